package domain

// ScoreBreakdown captures every sub-criterion of one primary/candidate comparison.
type ScoreBreakdown struct {
	GenreOverlap     float64 `json:"genreOverlap"`
	PrimaryGenre     float64 `json:"primaryGenre"`
	NameSimilarity   float64 `json:"nameSimilarity"`
	MinorCategorical float64 `json:"minorCategorical"`
	PriceTier        float64 `json:"priceTier"`
	Total            float64 `json:"total"`
}

// RankedEntry pairs a candidate with its final score and position.
type RankedEntry struct {
	Rank      int
	Record    AppRecord
	Score     float64
	Breakdown ScoreBreakdown
}

// Ranking is the outcome of one pipeline run.
type Ranking struct {
	Primary Identity
	Entries []RankedEntry
}
