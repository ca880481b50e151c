package ports

import (
	"context"
	"time"

	"AppRanker/internal/domain"
)

// MetadataProvider pulls app records from the remote catalog.
type MetadataProvider interface {
	FetchOne(ctx context.Context, id string) (domain.AppRecord, error)
	// FetchMany returns records in the order of ids, whatever order they complete in.
	FetchMany(ctx context.Context, ids []string) ([]domain.AppRecord, error)
}

// Presenter renders a finished ranking (console, JSON, etc.).
type Presenter interface {
	Present(ctx context.Context, ranking domain.Ranking) error
}

// Recorder collects operational metrics of lookups and rankings.
type Recorder interface {
	ObserveLookup(outcome string, elapsed time.Duration)
	ObserveRanking(status string, entries []domain.RankedEntry)
}
