//go:build !integration
// +build !integration

package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type ModelUnitSuite struct {
	suite.Suite
}

func (s *ModelUnitSuite) TestCacheKey(t provider.T) {
	t.Parallel()

	t.Run("Should be order independent", func(t provider.T) {
		t.Parallel()
		assert.Equal(t,
			CacheKey(MediaTypeMovie, []int{28, 12}),
			CacheKey(MediaTypeMovie, []int{12, 28}),
		)
	})

	t.Run("Should distinguish media types and genre sets", func(t provider.T) {
		t.Parallel()
		movieKey := CacheKey(MediaTypeMovie, []int{28})
		assert.NotEqual(t, movieKey, CacheKey(MediaTypeTV, []int{28}))
		assert.NotEqual(t, movieKey, CacheKey(MediaTypeMovie, []int{28, 12}))
		assert.NotEqual(t, movieKey, CacheKey(MediaTypeMovie, nil))
	})

	t.Run("Should follow the filter key format", func(t provider.T) {
		t.Parallel()
		assert.Regexp(t, regexp.MustCompile(`^filter_[0-9a-f]{16}$`), CacheKey(MediaTypeTV, []int{10759, 37}))
	})

	t.Run("Should not mutate the caller's slice", func(t provider.T) {
		t.Parallel()
		genres := []int{99, 1}
		CacheKey(MediaTypeMovie, genres)
		assert.Equal(t, []int{99, 1}, genres)
	})
}

func (s *ModelUnitSuite) TestFilterCriteriaValidate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		criteria    FilterCriteria
		expectError bool
	}{
		{
			name: "Should accept two genres",
			criteria: FilterCriteria{
				MediaType: MediaTypeMovie,
				GenreIDs:  []int{28, 12},
				RoomID:    "r1",
			},
		},
		{
			name: "Should accept no genres",
			criteria: FilterCriteria{
				MediaType: MediaTypeTV,
				RoomID:    "r1",
			},
		},
		{
			name: "Should reject three genres",
			criteria: FilterCriteria{
				MediaType: MediaTypeMovie,
				GenreIDs:  []int{28, 12, 35},
				RoomID:    "r1",
			},
			expectError: true,
		},
		{
			name: "Should reject unknown media type",
			criteria: FilterCriteria{
				MediaType: "BOOK",
				RoomID:    "r1",
			},
			expectError: true,
		},
		{
			name: "Should reject empty room id",
			criteria: FilterCriteria{
				MediaType: MediaTypeMovie,
			},
			expectError: true,
		},
		{
			name: "Should reject non-positive genre ids",
			criteria: FilterCriteria{
				MediaType: MediaTypeMovie,
				GenreIDs:  []int{28, 0},
				RoomID:    "r1",
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			err := tc.criteria.Validate()

			if tc.expectError {
				assert.ErrorIs(t, err, ErrInvalidCriteria)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func (s *ModelUnitSuite) TestParseMediaType(t provider.T) {
	t.Parallel()

	mt, err := ParseMediaType(" movie ")
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeMovie, mt)

	mt, err = ParseMediaType("TV")
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeTV, mt)

	_, err = ParseMediaType("radio")
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}

func (s *ModelUnitSuite) TestItemShape(t provider.T) {
	t.Parallel()

	assert.True(t, ShapeMovie.Matches(MediaTypeMovie))
	assert.True(t, ShapeTV.Matches(MediaTypeTV))
	assert.False(t, ShapeMovie.Matches(MediaTypeTV))
	assert.False(t, ShapeAmbiguous.Matches(MediaTypeMovie))
	assert.False(t, ShapeUnknown.Matches(MediaTypeTV))
	assert.Equal(t, "ambiguous", ShapeAmbiguous.String())
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ModelUnitSuite))
}
