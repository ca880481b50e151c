package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"AppRanker/internal/domain"
	"AppRanker/internal/ports"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns the presenter for format, writing to w.
func New(format string, w io.Writer) (ports.Presenter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewTextPresenter(w), nil
	case FormatJSON:
		return NewJSONPresenter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// TextPresenter prints the primary followed by a 1-based ranked listing.
type TextPresenter struct {
	w io.Writer
}

var _ ports.Presenter = (*TextPresenter)(nil)

// NewTextPresenter writes plain text lines to w.
func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: w}
}

// Present writes the listing.
func (p *TextPresenter) Present(_ context.Context, ranking domain.Ranking) error {
	if _, err := io.WriteString(p.w, buildListing(ranking)); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

func buildListing(ranking domain.Ranking) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PRIMARY: id%d - %s\n", ranking.Primary.TrackID, ranking.Primary.TrackName)
	for i, entry := range ranking.Entries {
		rank := entry.Rank
		if rank == 0 {
			rank = i + 1
		}
		fmt.Fprintf(&b, "%d. id%d - %s  Score: %.1f\n", rank, entry.Record.TrackID, entry.Record.Name(), entry.Score)
	}
	return b.String()
}

// JSONPresenter emits the ranking with per-criterion breakdowns.
type JSONPresenter struct {
	w io.Writer
}

var _ ports.Presenter = (*JSONPresenter)(nil)

// NewJSONPresenter writes an indented JSON document to w.
func NewJSONPresenter(w io.Writer) *JSONPresenter {
	return &JSONPresenter{w: w}
}

type jsonEntry struct {
	Rank      int                   `json:"rank"`
	TrackID   int64                 `json:"trackId"`
	TrackName string                `json:"trackName"`
	Score     float64               `json:"score"`
	Breakdown domain.ScoreBreakdown `json:"breakdown"`
}

type jsonReport struct {
	Primary domain.Identity `json:"primary"`
	Entries []jsonEntry     `json:"entries"`
}

// Present encodes the ranking.
func (p *JSONPresenter) Present(_ context.Context, ranking domain.Ranking) error {
	out := jsonReport{
		Primary: ranking.Primary,
		Entries: make([]jsonEntry, 0, len(ranking.Entries)),
	}
	for i, entry := range ranking.Entries {
		rank := entry.Rank
		if rank == 0 {
			rank = i + 1
		}
		out.Entries = append(out.Entries, jsonEntry{
			Rank:      rank,
			TrackID:   entry.Record.TrackID,
			TrackName: entry.Record.Name(),
			Score:     entry.Score,
			Breakdown: entry.Breakdown,
		})
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
