package usecase_pool

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reelswipe/core/internal/model"
)

const (
	posterBaseURL = "https://image.tmdb.org/t/p/w500"

	// minOverviewLength is the shortest overview considered meaningful.
	minOverviewLength = 21
)

// placeholderOverviews are upstream filler texts that look like real
// descriptions but carry no content. Compared case-insensitively.
var placeholderOverviews = map[string]struct{}{
	"no description available":  {},
	"descripción no disponible": {},
	"no overview found":         {},
}

var supportedLanguages = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {},
	"it": {}, "pt": {}, "ja": {}, "ko": {},
}

// validateItem is the second, stricter pass over a catalog item. It returns
// the normalized entry on acceptance, a non-empty reason on ordinary
// rejection, or an error when the item's field shape belongs to the wrong
// media type. Contamination is never folded into an ordinary rejection.
func validateItem(item model.RawItem, mt model.MediaType, tier int, now time.Time) (model.ContentEntry, string, error) {
	if item.ID == "" {
		return model.ContentEntry{}, "missing catalog id", nil
	}

	if item.Shape == model.ShapeAmbiguous {
		return model.ContentEntry{}, "", fmt.Errorf("%w: item %s carries both movie and tv fields", model.ErrCrossContamination, item.ID)
	}
	if item.Shape != model.ShapeUnknown && !item.Shape.Matches(mt) {
		return model.ContentEntry{}, "", fmt.Errorf("%w: %s-shaped item %s on a %s request", model.ErrCrossContamination, item.Shape, item.ID, mt)
	}

	title, releaseDate := item.Title, item.ReleaseDate
	if mt == model.MediaTypeTV {
		title, releaseDate = item.Name, item.FirstAirDate
	}
	if title == "" {
		return model.ContentEntry{}, "missing title", nil
	}
	if releaseDate == "" {
		return model.ContentEntry{}, "missing release date", nil
	}

	overview := strings.TrimSpace(item.Overview)
	if utf8.RuneCountInString(overview) < minOverviewLength {
		return model.ContentEntry{}, "overview too short", nil
	}
	if _, ok := placeholderOverviews[strings.ToLower(overview)]; ok {
		return model.ContentEntry{}, "placeholder overview", nil
	}

	if strings.TrimSpace(item.PosterPath) == "" {
		return model.ContentEntry{}, "missing poster", nil
	}
	if _, ok := supportedLanguages[item.OriginalLanguage]; !ok {
		return model.ContentEntry{}, "unsupported language", nil
	}
	if len(item.GenreIDs) == 0 {
		return model.ContentEntry{}, "empty genre list", nil
	}
	if math.IsNaN(item.VoteAverage) || math.IsInf(item.VoteAverage, 0) || item.VoteAverage < 0 {
		return model.ContentEntry{}, "malformed vote average", nil
	}
	if item.Adult {
		return model.ContentEntry{}, "adult content", nil
	}

	return model.ContentEntry{
		CatalogID:    item.ID,
		MediaType:    mt,
		Title:        title,
		PosterURL:    posterBaseURL + item.PosterPath,
		Overview:     overview,
		GenreIDs:     item.GenreIDs,
		VoteAverage:  item.VoteAverage,
		VoteCount:    item.VoteCount,
		Popularity:   item.Popularity,
		ReleaseDate:  releaseDate,
		PriorityTier: tier,
		AddedAt:      now,
	}, "", nil
}
