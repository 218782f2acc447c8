//go:build !integration
// +build !integration

package usecase_pool

import (
	"math"
	"testing"
	"time"

	"github.com/reelswipe/core/internal/model"
	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type GateUnitSuite struct {
	suite.Suite
}

func (s *GateUnitSuite) TestRejections(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		item   model.RawItem
		mt     model.MediaType
		reason string
	}{
		{
			name:   "Should reject missing catalog id",
			item:   NewRawItemBuilder("").Build(),
			mt:     model.MediaTypeMovie,
			reason: "missing catalog id",
		},
		{
			name: "Should reject missing title",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.Title = ""
				item.Shape = model.ShapeMovie
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "missing title",
		},
		{
			name: "Should reject missing release date",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.ReleaseDate = ""
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "missing release date",
		},
		{
			name:   "Should reject short overview",
			item:   NewRawItemBuilder("1").WithOverview("Too short.").Build(),
			mt:     model.MediaTypeMovie,
			reason: "overview too short",
		},
		{
			name: "Should count overview length in characters not bytes",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").WithOverview("これは短い説明ですよ").Build()
				item.OriginalLanguage = "ja"
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "overview too short",
		},
		{
			name:   "Should reject placeholder overview",
			item:   NewRawItemBuilder("1").WithOverview("No description available").Build(),
			mt:     model.MediaTypeMovie,
			reason: "placeholder overview",
		},
		{
			name:   "Should reject localized placeholder overview",
			item:   NewRawItemBuilder("1").WithOverview("  Descripción no disponible  ").Build(),
			mt:     model.MediaTypeMovie,
			reason: "placeholder overview",
		},
		{
			name: "Should reject missing poster",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.PosterPath = "  "
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "missing poster",
		},
		{
			name: "Should reject unsupported language",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.OriginalLanguage = "xx"
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "unsupported language",
		},
		{
			name: "Should reject empty genre list",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.GenreIDs = nil
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "empty genre list",
		},
		{
			name: "Should reject NaN vote average",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.VoteAverage = math.NaN()
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "malformed vote average",
		},
		{
			name: "Should reject negative vote average",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.VoteAverage = -1
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "malformed vote average",
		},
		{
			name: "Should reject adult content",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.Adult = true
				return item
			}(),
			mt:     model.MediaTypeMovie,
			reason: "adult content",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			_, reason, err := validateItem(tc.item, tc.mt, 1, time.Now())

			assert.NoError(t, err)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func (s *GateUnitSuite) TestContamination(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name string
		item model.RawItem
		mt   model.MediaType
	}{
		{
			name: "Should fault on tv shaped item for movie request",
			item: NewRawItemBuilder("1").WithTVFields().Build(),
			mt:   model.MediaTypeMovie,
		},
		{
			name: "Should fault on movie shaped item for tv request",
			item: NewRawItemBuilder("1").Build(),
			mt:   model.MediaTypeTV,
		},
		{
			name: "Should fault on ambiguous item regardless of request",
			item: func() model.RawItem {
				item := NewRawItemBuilder("1").Build()
				item.Name = "Also a show"
				item.FirstAirDate = "2020-05-01"
				item.Shape = model.ShapeAmbiguous
				return item
			}(),
			mt: model.MediaTypeMovie,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			_, _, err := validateItem(tc.item, tc.mt, 1, time.Now())

			assert.ErrorIs(t, err, model.ErrCrossContamination)
		})
	}
}

func (s *GateUnitSuite) TestNormalization(t provider.T) {
	t.Parallel()

	now := time.Now()

	t.Run("Should normalize movie item", func(t provider.T) {
		item := NewRawItemBuilder("603").Build()

		entry, reason, err := validateItem(item, model.MediaTypeMovie, 2, now)

		assert.NoError(t, err)
		assert.Empty(t, reason)
		assert.Equal(t, "603", entry.CatalogID)
		assert.Equal(t, model.MediaTypeMovie, entry.MediaType)
		assert.Equal(t, item.Title, entry.Title)
		assert.Equal(t, posterBaseURL+item.PosterPath, entry.PosterURL)
		assert.Equal(t, item.ReleaseDate, entry.ReleaseDate)
		assert.Equal(t, 2, entry.PriorityTier)
		assert.Equal(t, now, entry.AddedAt)
	})

	t.Run("Should accept multibyte overview of sufficient length", func(t provider.T) {
		item := NewRawItemBuilder("129").WithOverview("不思議な世界に迷い込んだ少女が働きながら両親を救う物語。").Build()
		item.OriginalLanguage = "ja"

		_, reason, err := validateItem(item, model.MediaTypeMovie, 1, now)

		assert.NoError(t, err)
		assert.Empty(t, reason)
	})

	t.Run("Should take title from tv fields on tv request", func(t provider.T) {
		item := NewRawItemBuilder("1399").WithTVFields().Build()

		entry, reason, err := validateItem(item, model.MediaTypeTV, 1, now)

		assert.NoError(t, err)
		assert.Empty(t, reason)
		assert.Equal(t, item.Name, entry.Title)
		assert.Equal(t, item.FirstAirDate, entry.ReleaseDate)
	})
}

func TestGateSuite(t *testing.T) {
	suite.RunSuite(t, new(GateUnitSuite))
}
