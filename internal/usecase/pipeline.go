package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"AppRanker/internal/domain"
	"AppRanker/internal/ports"
	"AppRanker/internal/ranking"
)

// Ranking outcome labels reported to the Recorder.
const (
	StatusRanked = "ranked"
	StatusFailed = "failed"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Provider ports.MetadataProvider
	Ranker   *ranking.Ranker
	Recorder ports.Recorder
	Logger   *slog.Logger
}

// Pipeline implements the fetch-then-rank workflow for one primary app.
type Pipeline struct {
	provider ports.MetadataProvider
	ranker   *ranking.Ranker
	recorder ports.Recorder
	logger   *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		provider: deps.Provider,
		ranker:   deps.Ranker,
		recorder: deps.Recorder,
		logger:   deps.Logger,
	}
}

// Run fetches the primary and every secondary record, then ranks the
// secondaries against the primary. Any failure aborts the run; a partial
// ranking is never returned.
func (p *Pipeline) Run(ctx context.Context, primaryID string, secondaryIDs []string) (domain.Ranking, error) {
	primaryID = strings.TrimSpace(primaryID)
	if primaryID == "" {
		return domain.Ranking{}, &domain.EmptyInputError{Field: "primary id"}
	}
	ids, err := normalizeIDs(secondaryIDs)
	if err != nil {
		return domain.Ranking{}, err
	}
	if p.provider == nil || p.ranker == nil {
		return domain.Ranking{}, fmt.Errorf("pipeline is not configured")
	}

	ranking, err := p.run(ctx, primaryID, ids)
	if err != nil {
		p.observe(StatusFailed, nil)
		return domain.Ranking{}, err
	}
	p.observe(StatusRanked, ranking.Entries)
	return ranking, nil
}

func (p *Pipeline) run(ctx context.Context, primaryID string, ids []string) (domain.Ranking, error) {
	p.debug("fetch primary", "id", primaryID)
	primary, err := p.provider.FetchOne(ctx, primaryID)
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("fetch primary %s: %w", primaryID, err)
	}

	p.debug("fetch secondaries", "count", len(ids))
	candidates, err := p.provider.FetchMany(ctx, ids)
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("fetch secondaries: %w", err)
	}
	if len(candidates) != len(ids) {
		return domain.Ranking{}, fmt.Errorf("fetch secondaries: got %d records for %d ids", len(candidates), len(ids))
	}

	entries, err := p.ranker.Rank(primary, candidates)
	if err != nil {
		return domain.Ranking{}, fmt.Errorf("rank against %d: %w", primary.TrackID, err)
	}

	p.debug("ranking done", "primary", primary.TrackID, "entries", len(entries))
	return domain.Ranking{Primary: primary.Identity(), Entries: entries}, nil
}

func normalizeIDs(raw []string) ([]string, error) {
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, &domain.EmptyInputError{Field: "secondary ids"}
	}
	return ids, nil
}

func (p *Pipeline) observe(status string, entries []domain.RankedEntry) {
	if p.recorder != nil {
		p.recorder.ObserveRanking(status, entries)
	}
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
