// Package similarity reduces two app records to a bounded similarity score.
//
// The total is 10 points:
//
//	genre-set overlap   2.0  (1.0 for any overlap + 1.0 * covered share of the primary's genres)
//	primary genre       3.0  (exact id equality)
//	name similarity     1.0  (sequence matching ratio of the track names)
//	minor categorical   4 x 0.8  (game center, languages, advisory rating, artist)
//	price tier          0.8  (free vs. paid)
package similarity

import (
	"math"

	"AppRanker/internal/domain"
	"AppRanker/internal/textmatch"
)

const (
	genreOverlapWeight = 2.0
	primaryGenreWeight = 3.0
	nameWeight         = 1.0
	minorWeight        = 4.0
	minorChecks        = 5 // four categorical fields + price tier
	minorCheckWeight   = minorWeight / minorChecks

	// MaxScore is the score of a perfect match.
	MaxScore = genreOverlapWeight + primaryGenreWeight + nameWeight + minorWeight
)

// Engine scores candidates against a primary record. It keeps no mutable state
// and is safe for concurrent use.
type Engine struct {
	names textmatch.Metric
}

// NewEngine uses metric for name similarity; nil selects Ratcliff/Obershelp.
func NewEngine(metric textmatch.Metric) *Engine {
	if metric == nil {
		metric = textmatch.SequenceMatcher{}
	}
	return &Engine{names: metric}
}

// Score compares candidate to primary. Both records must carry every scored field.
func (e *Engine) Score(primary, candidate domain.AppRecord) (domain.ScoreBreakdown, error) {
	if err := primary.Validate(); err != nil {
		return domain.ScoreBreakdown{}, err
	}
	if err := candidate.Validate(); err != nil {
		return domain.ScoreBreakdown{}, err
	}

	b := domain.ScoreBreakdown{
		GenreOverlap:     GenreOverlap(primary.GenreIDs, candidate.GenreIDs),
		PrimaryGenre:     primaryGenre(*primary.PrimaryGenreID, *candidate.PrimaryGenreID),
		NameSimilarity:   nameWeight * e.names.Ratio(*primary.TrackName, *candidate.TrackName),
		MinorCategorical: minorCategorical(primary, candidate),
		PriceTier:        PriceTier(*primary.FormattedPrice, *candidate.FormattedPrice),
	}
	b.Total = round1(b.GenreOverlap + b.PrimaryGenre + b.NameSimilarity + b.MinorCategorical + b.PriceTier)
	return b, nil
}

// GenreOverlap gives half the weight for any shared genre and the other half
// in proportion to how many of the primary's genres the candidate covers.
func GenreOverlap(primary, candidate []string) float64 {
	p := toSet(primary)
	if len(p) == 0 {
		return 0
	}
	c := toSet(candidate)

	matched := 0
	for g := range p {
		if _, ok := c[g]; ok {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	half := genreOverlapWeight / 2
	return half + half*float64(matched)/float64(len(p))
}

func primaryGenre(a, b string) float64 {
	if a == "" || b == "" || a != b {
		return 0
	}
	return primaryGenreWeight
}

func minorCategorical(primary, candidate domain.AppRecord) float64 {
	score := 0.0
	if *primary.GameCenterEnabled == *candidate.GameCenterEnabled {
		score += minorCheckWeight
	}
	if languagesMatch(primary.LanguageCodes, candidate.LanguageCodes) {
		score += minorCheckWeight
	}
	if *primary.ContentAdvisoryRating == *candidate.ContentAdvisoryRating {
		score += minorCheckWeight
	}
	if *primary.ArtistID == *candidate.ArtistID {
		score += minorCheckWeight
	}
	return score
}

// languagesMatch is true when the locale sets intersect or are both empty.
func languagesMatch(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	set := toSet(a)
	for _, code := range b {
		if _, ok := set[code]; ok {
			return true
		}
	}
	return false
}

// PriceTier matches on free vs. paid, not on the exact price.
func PriceTier(a, b string) float64 {
	if (a == domain.FreePrice) == (b == domain.FreePrice) {
		return minorCheckWeight
	}
	return 0
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
