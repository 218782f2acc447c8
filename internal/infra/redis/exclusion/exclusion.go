// Package infra_room_exclusion tracks which catalog ids a room has already
// been shown. Sets grow append-only; teardown of a room's set belongs to
// the room lifecycle owner, not this pipeline.
package infra_room_exclusion

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"

	"github.com/reelswipe/core/internal/model"
)

type Driver struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Track appends catalog ids to the room's exclusion set.
func (d *Driver) Track(ctx context.Context, roomID model.RoomID, catalogIDs []string) error {
	if roomID == model.EmptyRoomID || len(catalogIDs) == 0 {
		return nil
	}

	members := make([]interface{}, len(catalogIDs))
	for i, id := range catalogIDs {
		members[i] = id
	}

	if err := d.client.SAdd(d.fullKey(roomID), members...).Err(); err != nil {
		return fmt.Errorf("failed to track shown content: %w", err)
	}
	return nil
}

// Excluded returns the room's full exclusion set.
func (d *Driver) Excluded(ctx context.Context, roomID model.RoomID) (map[string]struct{}, error) {
	if roomID == model.EmptyRoomID {
		return map[string]struct{}{}, nil
	}

	ids, err := d.client.SMembers(d.fullKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load exclusion set: %w", err)
	}

	excluded := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	return excluded, nil
}

func (d *Driver) fullKey(roomID model.RoomID) string {
	if d.key != "" {
		return d.key + ":" + string(roomID)
	}
	return string(roomID)
}
