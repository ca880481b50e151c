// Package domaintest builds app records for tests.
package domaintest

import "AppRanker/internal/domain"

// Option tweaks a record built by Record.
type Option func(*domain.AppRecord)

// Record returns a complete record: a free, English, 4+ game in genre 6014.
func Record(id int64, name string, opts ...Option) domain.AppRecord {
	rec := domain.AppRecord{
		TrackID:               id,
		TrackName:             ptr(name),
		PrimaryGenreID:        ptr("6014"),
		GenreIDs:              []string{"6014", "7001"},
		GameCenterEnabled:     ptr(true),
		LanguageCodes:         []string{"EN"},
		ContentAdvisoryRating: ptr("4+"),
		ArtistID:              ptr(int64(298910979)),
		FormattedPrice:        ptr(domain.FreePrice),
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

func PrimaryGenre(id string) Option {
	return func(r *domain.AppRecord) { r.PrimaryGenreID = ptr(id) }
}

func Genres(ids ...string) Option {
	return func(r *domain.AppRecord) { r.GenreIDs = ids }
}

func GameCenter(enabled bool) Option {
	return func(r *domain.AppRecord) { r.GameCenterEnabled = ptr(enabled) }
}

func Languages(codes ...string) Option {
	return func(r *domain.AppRecord) {
		if codes == nil {
			codes = []string{}
		}
		r.LanguageCodes = codes
	}
}

func Rating(rating string) Option {
	return func(r *domain.AppRecord) { r.ContentAdvisoryRating = ptr(rating) }
}

func Artist(id int64) Option {
	return func(r *domain.AppRecord) { r.ArtistID = ptr(id) }
}

func Price(formatted string) Option {
	return func(r *domain.AppRecord) { r.FormattedPrice = ptr(formatted) }
}

// Without drops a field by its payload name.
func Without(field string) Option {
	return func(r *domain.AppRecord) {
		switch field {
		case domain.FieldTrackName:
			r.TrackName = nil
		case domain.FieldPrimaryGenreID:
			r.PrimaryGenreID = nil
		case domain.FieldGenreIDs:
			r.GenreIDs = nil
		case domain.FieldGameCenterEnabled:
			r.GameCenterEnabled = nil
		case domain.FieldLanguageCodes:
			r.LanguageCodes = nil
		case domain.FieldContentAdvisoryRating:
			r.ContentAdvisoryRating = nil
		case domain.FieldArtistID:
			r.ArtistID = nil
		case domain.FieldFormattedPrice:
			r.FormattedPrice = nil
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
