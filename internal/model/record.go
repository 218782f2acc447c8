package model

import (
	"time"

	"github.com/google/uuid"
)

// PoolRecord is the provenance row written after a pool is assembled:
// which room asked, what criteria resolved to, and how the tiers contributed.
type PoolRecord struct {
	ID         uuid.UUID
	RoomID     RoomID
	CacheKey   string
	MediaType  MediaType
	GenreIDs   []int
	PoolSize   int
	TierCounts [3]int
	FromCache  bool
	CreatedAt  time.Time
}
