package ranking

import (
	"errors"
	"testing"

	"AppRanker/internal/domain"
	dt "AppRanker/internal/domain/domaintest"
	"AppRanker/internal/similarity"
)

// tableScorer returns a fixed total per candidate track id.
type tableScorer map[int64]float64

func (s tableScorer) Score(_, candidate domain.AppRecord) (domain.ScoreBreakdown, error) {
	return domain.ScoreBreakdown{Total: s[candidate.TrackID]}, nil
}

func TestRankOrdersNumerically(t *testing.T) {
	t.Parallel()

	// "9.5" > "10.0" as text; the ranker must not fall for that.
	scorer := tableScorer{1: 9.5, 2: 10.0, 3: 2.25, 4: 9.9}
	r := NewRanker(scorer)

	entries, err := r.Rank(dt.Record(0, "P"), []domain.AppRecord{
		dt.Record(1, "a"), dt.Record(2, "b"), dt.Record(3, "c"), dt.Record(4, "d"),
	})
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	wantIDs := []int64{2, 4, 1, 3}
	for i, want := range wantIDs {
		if entries[i].Record.TrackID != want {
			t.Fatalf("position %d: expected track %d, got %d", i, want, entries[i].Record.TrackID)
		}
		if entries[i].Rank != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, entries[i].Rank)
		}
	}
	for i := 0; i+1 < len(entries); i++ {
		if entries[i].Score < entries[i+1].Score {
			t.Fatalf("entries not descending at %d: %v < %v", i, entries[i].Score, entries[i+1].Score)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	t.Parallel()

	scorer := tableScorer{1: 5, 2: 7, 3: 5, 4: 5, 5: 7}
	r := NewRanker(scorer)

	entries, err := r.Rank(dt.Record(0, "P"), []domain.AppRecord{
		dt.Record(1, "a"), dt.Record(2, "b"), dt.Record(3, "c"), dt.Record(4, "d"), dt.Record(5, "e"),
	})
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	wantIDs := []int64{2, 5, 1, 3, 4}
	for i, want := range wantIDs {
		if entries[i].Record.TrackID != want {
			t.Fatalf("position %d: expected track %d, got %d", i, want, entries[i].Record.TrackID)
		}
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	t.Parallel()

	r := NewRanker(similarity.NewEngine(nil))
	entries, err := r.Rank(dt.Record(0, "P"), nil)

	var empty *domain.EmptyInputError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
	if entries != nil {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestRankFailsOnIncompleteCandidate(t *testing.T) {
	t.Parallel()

	r := NewRanker(similarity.NewEngine(nil))
	entries, err := r.Rank(dt.Record(0, "FlappyBird"), []domain.AppRecord{
		dt.Record(1, "AngryBird"),
		dt.Record(2, "FruitNinja", dt.Without(domain.FieldPrimaryGenreID)),
		dt.Record(3, "Temple Run"),
	})

	var incomplete *domain.IncompleteRecordError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteRecordError, got %v", err)
	}
	if incomplete.Field != domain.FieldPrimaryGenreID {
		t.Fatalf("unexpected missing field: %s", incomplete.Field)
	}
	if len(entries) != 0 {
		t.Fatalf("expected zero entries, got %d", len(entries))
	}
}

func TestRankWithEngine(t *testing.T) {
	t.Parallel()

	r := NewRanker(similarity.NewEngine(nil))
	primary := dt.Record(0, "FlappyBird")

	entries, err := r.Rank(primary, []domain.AppRecord{
		dt.Record(1, "FruitNinja"),
		dt.Record(2, "AngryBird"),
		dt.Record(3, "FlappyBird"),
	})
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if entries[0].Record.TrackID != 3 || entries[0].Score != 10.0 {
		t.Fatalf("identical app should rank first with 10.0, got %+v", entries[0])
	}
	if entries[1].Record.TrackID != 2 || entries[2].Record.TrackID != 1 {
		t.Fatalf("unexpected order: %d, %d", entries[1].Record.TrackID, entries[2].Record.TrackID)
	}
}
