package usecase_genres

import (
	"context"
	"errors"
	"fmt"

	"github.com/reelswipe/core/internal/model"
)

var ErrFailedToFetchGenres = errors.New("failed to fetch genres")

type CatalogClient interface {
	Genres(ctx context.Context, mt model.MediaType) ([]model.Genre, error)
}

type Usecase struct {
	catalog CatalogClient
}

func New(catalog CatalogClient) *Usecase {
	return &Usecase{catalog: catalog}
}

// Available lists the catalog's genre taxonomy for a media type, as shown
// to users picking room filters.
func (u *Usecase) Available(ctx context.Context, mt model.MediaType) ([]model.Genre, error) {
	if !mt.Valid() {
		return nil, fmt.Errorf("%w: unknown media type %q", model.ErrInvalidCriteria, string(mt))
	}
	gg, err := u.catalog.Genres(ctx, mt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFetchGenres, err)
	}
	return gg, nil
}
