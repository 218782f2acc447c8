package infra_postgres_poolrecord

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/reelswipe/core/internal/model"
)

type PoolRecordDB struct {
	ID         uuid.UUID     `db:"id"`
	RoomID     string        `db:"room_id"`
	CacheKey   string        `db:"cache_key"`
	MediaType  string        `db:"media_type"`
	GenreIDs   pq.Int64Array `db:"genre_ids"`
	PoolSize   int           `db:"pool_size"`
	Tier1Count int           `db:"tier1_count"`
	Tier2Count int           `db:"tier2_count"`
	Tier3Count int           `db:"tier3_count"`
	FromCache  bool          `db:"from_cache"`
	CreatedAt  time.Time     `db:"created_at"`
}

func (r *PoolRecordDB) ToDomain() model.PoolRecord {
	genreIDs := make([]int, len(r.GenreIDs))
	for i, id := range r.GenreIDs {
		genreIDs[i] = int(id)
	}

	return model.PoolRecord{
		ID:         r.ID,
		RoomID:     model.RoomID(r.RoomID),
		CacheKey:   r.CacheKey,
		MediaType:  model.MediaType(r.MediaType),
		GenreIDs:   genreIDs,
		PoolSize:   r.PoolSize,
		TierCounts: [3]int{r.Tier1Count, r.Tier2Count, r.Tier3Count},
		FromCache:  r.FromCache,
		CreatedAt:  r.CreatedAt,
	}
}

func FromDomain(rec model.PoolRecord) PoolRecordDB {
	genreIDs := make(pq.Int64Array, len(rec.GenreIDs))
	for i, id := range rec.GenreIDs {
		genreIDs[i] = int64(id)
	}

	return PoolRecordDB{
		ID:         rec.ID,
		RoomID:     string(rec.RoomID),
		CacheKey:   rec.CacheKey,
		MediaType:  string(rec.MediaType),
		GenreIDs:   genreIDs,
		PoolSize:   rec.PoolSize,
		Tier1Count: rec.TierCounts[0],
		Tier2Count: rec.TierCounts[1],
		Tier3Count: rec.TierCounts[2],
		FromCache:  rec.FromCache,
		CreatedAt:  rec.CreatedAt,
	}
}
