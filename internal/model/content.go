package model

import (
	"errors"
	"time"
)

// ErrCrossContamination marks a catalog item whose field shape belongs to
// the wrong media type (or to both at once). Such items are never included
// in a result set, regardless of deployment policy.
var ErrCrossContamination = errors.New("cross media type contamination")

// ItemShape is the discriminant of a raw catalog item, derived once at the
// API boundary from which optional field pair the upstream populated.
type ItemShape int

const (
	// ShapeUnknown: neither the movie nor the TV field pair is present.
	ShapeUnknown ItemShape = iota
	// ShapeMovie: title and/or release date present, no TV fields.
	ShapeMovie
	// ShapeTV: name and/or first air date present, no movie fields.
	ShapeTV
	// ShapeAmbiguous: both field pairs present at once. Always contamination.
	ShapeAmbiguous
)

func (s ItemShape) String() string {
	switch s {
	case ShapeMovie:
		return "movie"
	case ShapeTV:
		return "tv"
	case ShapeAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Matches reports whether the shape is the one expected for the media type.
func (s ItemShape) Matches(mt MediaType) bool {
	switch mt {
	case MediaTypeMovie:
		return s == ShapeMovie
	case MediaTypeTV:
		return s == ShapeTV
	default:
		return false
	}
}

// RawItem is an untrusted catalog item as decoded from the upstream API.
// Shape is assigned by the client's normalization pass; every other field
// is carried verbatim and must survive the per-item validation gate before
// reaching a result set.
type RawItem struct {
	ID               string
	Shape            ItemShape
	Title            string
	Name             string
	Overview         string
	PosterPath       string
	GenreIDs         []int
	VoteAverage      float64
	VoteCount        int
	Popularity       float64
	ReleaseDate      string
	FirstAirDate     string
	OriginalLanguage string
	Adult            bool
}

// ContentEntry is the trusted, normalized unit stored in cache entries and
// returned to callers. Field values are guaranteed well-formed by the gate.
type ContentEntry struct {
	CatalogID    string    `json:"catalog_id"`
	MediaType    MediaType `json:"media_type"`
	Title        string    `json:"title"`
	PosterURL    string    `json:"poster_url"`
	Overview     string    `json:"overview"`
	GenreIDs     []int     `json:"genre_ids"`
	VoteAverage  float64   `json:"vote_average"`
	VoteCount    int       `json:"vote_count"`
	Popularity   float64   `json:"popularity"`
	ReleaseDate  string    `json:"release_date"`
	PriorityTier int       `json:"priority_tier"`
	AddedAt      time.Time `json:"added_at"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreMode selects how multiple genre ids combine in a discover query.
type GenreMode int

const (
	// GenreModeAll requires an item to carry every requested genre.
	GenreModeAll GenreMode = iota
	// GenreModeAny requires an item to carry at least one requested genre.
	GenreModeAny
)

// SortOrder selects the upstream ordering of a discover query.
type SortOrder string

const (
	SortByRating     SortOrder = "vote_average.desc"
	SortByPopularity SortOrder = "popularity.desc"
)

// DiscoverRequest is one page-sized query against the catalog's discover
// endpoint, as issued by a retrieval tier.
type DiscoverRequest struct {
	MediaType MediaType
	GenreIDs  []int
	GenreMode GenreMode
	SortBy    SortOrder
	Page      int
}
