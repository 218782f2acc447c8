//go:build !integration
// +build !integration

package usecase_genres

import (
	"context"
	"errors"
	"testing"

	"github.com/reelswipe/core/internal/model"
	catalog_mocks "github.com/reelswipe/core/internal/usecase/genres/mocks/genres/catalog"
	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseGenresUnitSuite struct {
	suite.Suite
}

func (s *UsecaseGenresUnitSuite) TestAvailable(t provider.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("Should list genres for a valid media type", func(t provider.T) {
		t.Parallel()
		catalog := catalog_mocks.NewCatalogClient(t)
		usecase := New(catalog)

		expected := []model.Genre{{ID: 28, Name: "Action"}, {ID: 37, Name: "Western"}}
		catalog.On("Genres", ctx, model.MediaTypeMovie).Return(expected, nil).Once()

		gg, err := usecase.Available(ctx, model.MediaTypeMovie)

		assert.NoError(t, err)
		assert.Equal(t, expected, gg)
	})

	t.Run("Should reject unknown media type without calling the catalog", func(t provider.T) {
		t.Parallel()
		catalog := catalog_mocks.NewCatalogClient(t)
		usecase := New(catalog)

		gg, err := usecase.Available(ctx, "PODCAST")

		assert.Nil(t, gg)
		assert.ErrorIs(t, err, model.ErrInvalidCriteria)
	})

	t.Run("Should wrap catalog failures", func(t provider.T) {
		t.Parallel()
		catalog := catalog_mocks.NewCatalogClient(t)
		usecase := New(catalog)

		catalog.On("Genres", ctx, model.MediaTypeTV).Return(nil, errors.New("timeout")).Once()

		gg, err := usecase.Available(ctx, model.MediaTypeTV)

		assert.Nil(t, gg)
		assert.ErrorIs(t, err, ErrFailedToFetchGenres)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseGenresUnitSuite))
}
