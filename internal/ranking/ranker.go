// Package ranking orders candidate apps by their similarity to a primary app.
package ranking

import (
	"fmt"
	"sort"

	"AppRanker/internal/domain"
)

// Scorer compares a candidate to the primary record.
type Scorer interface {
	Score(primary, candidate domain.AppRecord) (domain.ScoreBreakdown, error)
}

// Ranker applies a Scorer across a candidate list.
type Ranker struct {
	scorer Scorer
}

// NewRanker wires the scoring engine.
func NewRanker(scorer Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores every candidate and sorts by numeric score, highest first.
// Candidates with equal scores keep their input order. A single failing
// comparison fails the whole call and no entries are returned.
func (r *Ranker) Rank(primary domain.AppRecord, candidates []domain.AppRecord) ([]domain.RankedEntry, error) {
	if len(candidates) == 0 {
		return nil, &domain.EmptyInputError{Field: "candidates"}
	}
	if r.scorer == nil {
		return nil, fmt.Errorf("ranker has no scorer configured")
	}

	entries := make([]domain.RankedEntry, 0, len(candidates))
	for _, candidate := range candidates {
		breakdown, err := r.scorer.Score(primary, candidate)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.RankedEntry{
			Record:    candidate,
			Score:     breakdown.Total,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
