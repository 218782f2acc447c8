package model

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "MOVIE"
	MediaTypeTV    MediaType = "TV"
)

func (mt MediaType) Valid() bool {
	return mt == MediaTypeMovie || mt == MediaTypeTV
}

func ParseMediaType(s string) (MediaType, error) {
	mt := MediaType(strings.ToUpper(strings.TrimSpace(s)))
	if !mt.Valid() {
		return "", fmt.Errorf("%w: unknown media type %q", ErrInvalidCriteria, s)
	}
	return mt, nil
}

type RoomID string

const EmptyRoomID RoomID = ""

// MaxGenreFilters bounds how many genre preferences a single room may carry.
const MaxGenreFilters = 2

var ErrInvalidCriteria = errors.New("invalid filter criteria")

// FilterCriteria is the inbound request of the filtering pipeline:
// a room, its media type and up to two genre preferences.
type FilterCriteria struct {
	MediaType MediaType
	GenreIDs  []int
	RoomID    RoomID
}

func (c FilterCriteria) Validate() error {
	if !c.MediaType.Valid() {
		return fmt.Errorf("%w: unknown media type %q", ErrInvalidCriteria, string(c.MediaType))
	}
	if len(c.GenreIDs) > MaxGenreFilters {
		return fmt.Errorf("%w: at most %d genres allowed, got %d", ErrInvalidCriteria, MaxGenreFilters, len(c.GenreIDs))
	}
	if c.RoomID == EmptyRoomID {
		return fmt.Errorf("%w: room id cannot be empty", ErrInvalidCriteria)
	}
	for _, id := range c.GenreIDs {
		if id <= 0 {
			return fmt.Errorf("%w: genre id must be positive, got %d", ErrInvalidCriteria, id)
		}
	}
	return nil
}

// CacheKey derives the deterministic criteria key used by the filter cache
// and provenance records. Genre ids are sorted first, so criteria differing
// only in genre order collide to the same key.
func CacheKey(mt MediaType, genreIDs []int) string {
	sorted := make([]int, len(genreIDs))
	copy(sorted, genreIDs)
	sort.Ints(sorted)

	h := sha256.Sum256(fmt.Appendf(nil, "%s|%v", mt, sorted))
	return "filter_" + hex.EncodeToString(h[:8])
}
