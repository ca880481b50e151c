package domain

// AppRecord is the normalized view of one catalog entry used for scoring.
// Absent payload fields stay nil so scoring can tell them apart from zero values.
type AppRecord struct {
	TrackID               int64
	TrackName             *string
	PrimaryGenreID        *string
	GenreIDs              []string
	GameCenterEnabled     *bool
	LanguageCodes         []string
	ContentAdvisoryRating *string
	ArtistID              *int64
	FormattedPrice        *string
}

// Record field names, as they appear in catalog payloads.
const (
	FieldTrackID               = "trackId"
	FieldTrackName             = "trackName"
	FieldPrimaryGenreID        = "primaryGenreId"
	FieldGenreIDs              = "genreIds"
	FieldGameCenterEnabled     = "isGameCenterEnabled"
	FieldLanguageCodes         = "languageCodesISO2A"
	FieldContentAdvisoryRating = "contentAdvisoryRating"
	FieldArtistID              = "artistId"
	FieldFormattedPrice        = "formattedPrice"
)

// FreePrice is the formattedPrice value of apps without a price tag.
const FreePrice = "Free"

// Name returns the display name or an empty string when it is absent.
func (r AppRecord) Name() string {
	if r.TrackName == nil {
		return ""
	}
	return *r.TrackName
}

// Identity returns the presentation identity of the record.
func (r AppRecord) Identity() Identity {
	return Identity{TrackID: r.TrackID, TrackName: r.Name()}
}

// Validate reports the first field required for scoring that is missing.
func (r AppRecord) Validate() error {
	switch {
	case r.TrackName == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldTrackName}
	case r.PrimaryGenreID == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldPrimaryGenreID}
	case len(r.GenreIDs) == 0:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldGenreIDs}
	case r.GameCenterEnabled == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldGameCenterEnabled}
	case r.LanguageCodes == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldLanguageCodes}
	case r.ContentAdvisoryRating == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldContentAdvisoryRating}
	case r.ArtistID == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldArtistID}
	case r.FormattedPrice == nil:
		return &IncompleteRecordError{TrackID: r.TrackID, Field: FieldFormattedPrice}
	}
	return nil
}

// Identity is what presenters show for an app.
type Identity struct {
	TrackID   int64  `json:"trackId"`
	TrackName string `json:"trackName"`
}
