//go:build !integration
// +build !integration

package crosswalk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type CrosswalkUnitSuite struct {
	suite.Suite
}

func (s *CrosswalkUnitSuite) TestToTV(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       []int
		expected []int
	}{
		{
			name:     "Should map action onto combined action adventure",
			in:       []int{28},
			expected: []int{TVActionAdventure},
		},
		{
			name:     "Should collapse action and adventure into one id",
			in:       []int{28, 12},
			expected: []int{TVActionAdventure},
		},
		{
			name:     "Should keep western unchanged",
			in:       []int{37},
			expected: []int{37},
		},
		{
			name:     "Should map fantasy and science fiction onto scifi fantasy",
			in:       []int{14, 878},
			expected: []int{TVSciFiFantasy},
		},
		{
			name:     "Should map war onto war and politics",
			in:       []int{10752},
			expected: []int{TVWarPolitics},
		},
		{
			name:     "Should map horror and thriller onto mystery",
			in:       []int{27, 53},
			expected: []int{9648},
		},
		{
			name:     "Should pass shared ids through",
			in:       []int{18, 35},
			expected: []int{18, 35},
		},
		{
			name:     "Should preserve first seen order",
			in:       []int{37, 28},
			expected: []int{37, TVActionAdventure},
		},
		{
			name:     "Should return nil for empty input",
			in:       nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ToTV(tc.in))
		})
	}
}

func (s *CrosswalkUnitSuite) TestToMovie(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       []int
		expected []int
	}{
		{
			name:     "Should map combined action adventure back to action",
			in:       []int{TVActionAdventure},
			expected: []int{28},
		},
		{
			name:     "Should map scifi fantasy back to science fiction",
			in:       []int{TVSciFiFantasy},
			expected: []int{878},
		},
		{
			name:     "Should map kids onto family",
			in:       []int{10762},
			expected: []int{10751},
		},
		{
			name:     "Should keep western unchanged",
			in:       []int{37},
			expected: []int{37},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ToMovie(tc.in))
		})
	}
}

func (s *CrosswalkUnitSuite) TestKnownGenres(t provider.T) {
	t.Parallel()

	assert.True(t, KnownMovieGenre(28))
	assert.False(t, KnownMovieGenre(TVActionAdventure))
	assert.True(t, KnownTVGenre(TVActionAdventure))
	assert.False(t, KnownTVGenre(28))
	assert.True(t, KnownMovieGenre(37))
	assert.True(t, KnownTVGenre(37))
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(CrosswalkUnitSuite))
}
