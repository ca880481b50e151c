package itunes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"AppRanker/internal/domain"
)

type lookupResponse struct {
	ResultCount int          `json:"resultCount"`
	Results     []lookupItem `json:"results"`
}

type lookupItem struct {
	TrackID               int64       `json:"trackId"`
	TrackName             *string     `json:"trackName"`
	PrimaryGenreID        *textValue  `json:"primaryGenreId"`
	GenreIDs              []textValue `json:"genreIds"`
	IsGameCenterEnabled   *bool       `json:"isGameCenterEnabled"`
	LanguageCodesISO2A    []string    `json:"languageCodesISO2A"`
	ContentAdvisoryRating *string     `json:"contentAdvisoryRating"`
	ArtistID              *int64      `json:"artistId"`
	FormattedPrice        *string     `json:"formattedPrice"`
}

// textValue accepts JSON strings and numbers; ids arrive as either.
type textValue string

func (v *textValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = textValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*v = textValue(n.String())
	return nil
}

func (item lookupItem) toRecord() (domain.AppRecord, error) {
	if item.TrackID == 0 {
		return domain.AppRecord{}, &domain.IncompleteRecordError{Field: domain.FieldTrackID}
	}

	rec := domain.AppRecord{
		TrackID:               item.TrackID,
		TrackName:             item.TrackName,
		GameCenterEnabled:     item.IsGameCenterEnabled,
		LanguageCodes:         item.LanguageCodesISO2A,
		ContentAdvisoryRating: item.ContentAdvisoryRating,
		ArtistID:              item.ArtistID,
		FormattedPrice:        item.FormattedPrice,
	}
	if item.PrimaryGenreID != nil {
		s := string(*item.PrimaryGenreID)
		rec.PrimaryGenreID = &s
	}
	if item.GenreIDs != nil {
		rec.GenreIDs = make([]string, 0, len(item.GenreIDs))
		for _, g := range item.GenreIDs {
			rec.GenreIDs = append(rec.GenreIDs, string(g))
		}
	}

	if err := rec.Validate(); err != nil {
		return domain.AppRecord{}, err
	}
	return rec, nil
}
