package infra_tmdb

import (
	"strconv"

	"github.com/reelswipe/core/internal/model"
)

type discoverResponseDTO struct {
	Page         int          `json:"page"`
	Results      []rawItemDTO `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

type rawItemDTO struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	OriginalLanguage string  `json:"original_language"`
	Adult            bool    `json:"adult"`
}

type genreListDTO struct {
	Genres []genreDTO `json:"genres"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// toRawItem is the single normalization point for untrusted catalog items.
// The media-type discriminant is derived here, once, from which optional
// field pair the upstream populated; everything downstream switches on the
// explicit shape instead of re-probing fields.
func (d rawItemDTO) toRawItem() model.RawItem {
	hasMovieFields := d.Title != "" || d.ReleaseDate != ""
	hasTVFields := d.Name != "" || d.FirstAirDate != ""

	shape := model.ShapeUnknown
	switch {
	case hasMovieFields && hasTVFields:
		shape = model.ShapeAmbiguous
	case hasMovieFields:
		shape = model.ShapeMovie
	case hasTVFields:
		shape = model.ShapeTV
	}

	id := ""
	if d.ID > 0 {
		id = strconv.Itoa(d.ID)
	}

	return model.RawItem{
		ID:               id,
		Shape:            shape,
		Title:            d.Title,
		Name:             d.Name,
		Overview:         d.Overview,
		PosterPath:       d.PosterPath,
		GenreIDs:         d.GenreIDs,
		VoteAverage:      d.VoteAverage,
		VoteCount:        d.VoteCount,
		Popularity:       d.Popularity,
		ReleaseDate:      d.ReleaseDate,
		FirstAirDate:     d.FirstAirDate,
		OriginalLanguage: d.OriginalLanguage,
		Adult:            d.Adult,
	}
}

func toGenres(dtos []genreDTO) []model.Genre {
	genres := make([]model.Genre, len(dtos))
	for i, g := range dtos {
		genres[i] = model.Genre{ID: g.ID, Name: g.Name}
	}
	return genres
}
