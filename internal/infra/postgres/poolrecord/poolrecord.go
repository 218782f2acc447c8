// Package infra_postgres_poolrecord keeps one provenance row per assembled
// content pool. Writes are best-effort from the engine's point of view;
// the pipeline result never depends on them.
package infra_postgres_poolrecord

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/reelswipe/core/internal/model"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, rec model.PoolRecord) error {
	recordDB := FromDomain(rec)

	query := `
		INSERT INTO pool_records (id, room_id, cache_key, media_type, genre_ids, pool_size,
			tier1_count, tier2_count, tier3_count, from_cache, created_at)
		VALUES (:id, :room_id, :cache_key, :media_type, :genre_ids, :pool_size,
			:tier1_count, :tier2_count, :tier3_count, :from_cache, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, recordDB)
	if err != nil {
		return fmt.Errorf("failed to store pool record: %w", err)
	}

	return nil
}

func (r *Repository) LoadByRoom(ctx context.Context, roomID model.RoomID) ([]model.PoolRecord, error) {
	query := `
		SELECT id, room_id, cache_key, media_type, genre_ids, pool_size,
			tier1_count, tier2_count, tier3_count, from_cache, created_at
		FROM pool_records
		WHERE room_id = $1
		ORDER BY created_at DESC
	`

	var recordsDB []PoolRecordDB
	if err := r.db.SelectContext(ctx, &recordsDB, query, string(roomID)); err != nil {
		return nil, fmt.Errorf("failed to query pool records: %w", err)
	}

	records := make([]model.PoolRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		records[i] = recordDB.ToDomain()
	}
	return records, nil
}
