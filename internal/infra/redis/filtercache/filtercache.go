// Package infra_filter_cache persists computed content pools keyed by a
// normalized hash of the filter criteria, so identical rooms created within
// the TTL reuse the same upstream work.
package infra_filter_cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis"
	"github.com/goccy/go-json"

	"github.com/reelswipe/core/internal/model"
)

// DefaultTTL is how long a computed pool stays servable.
const DefaultTTL = 24 * time.Hour

type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Driver)

func WithTTL(ttl time.Duration) Option {
	return func(d *Driver) {
		d.ttl = ttl
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

func New(client *redis.Client, key string, opts ...Option) *Driver {
	d := &Driver{
		client: client,
		key:    key,
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type cacheEntryDTO struct {
	CacheKey       string               `json:"cache_key"`
	MediaType      model.MediaType      `json:"media_type"`
	GenreIDs       []int                `json:"genre_ids"`
	Content        []model.ContentEntry `json:"content"`
	CreatedAt      time.Time            `json:"created_at"`
	ExpiresAt      time.Time            `json:"expires_at"`
	TotalAvailable int                  `json:"total_available"`
}

// Get returns the cached pool for the criteria, or absent. Entries past
// their expiry are treated as a miss and lazily deleted.
func (d *Driver) Get(ctx context.Context, mt model.MediaType, genreIDs []int) ([]model.ContentEntry, bool, error) {
	fullKey := d.fullKey(model.CacheKey(mt, genreIDs))

	val, err := d.client.Get(fullKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry cacheEntryDTO
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	if !time.Now().Before(entry.ExpiresAt) {
		if err := d.client.Del(fullKey).Err(); err != nil {
			d.logger.Warn("failed to invalidate expired cache entry",
				slog.String("key", fullKey),
				slog.String("error", err.Error()),
			)
		}
		return nil, false, nil
	}

	return entry.Content, true, nil
}

// Set stores the full computed pool under the criteria key with the TTL.
func (d *Driver) Set(ctx context.Context, mt model.MediaType, genreIDs []int, content []model.ContentEntry) error {
	now := time.Now()
	entry := cacheEntryDTO{
		CacheKey:       model.CacheKey(mt, genreIDs),
		MediaType:      mt,
		GenreIDs:       genreIDs,
		Content:        content,
		CreatedAt:      now,
		ExpiresAt:      now.Add(d.ttl),
		TotalAvailable: len(content),
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := d.client.Set(d.fullKey(entry.CacheKey), b, d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Invalidate drops the entry for the criteria, if present.
func (d *Driver) Invalidate(ctx context.Context, mt model.MediaType, genreIDs []int) error {
	if err := d.client.Del(d.fullKey(model.CacheKey(mt, genreIDs))).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}
	return nil
}

func (d *Driver) fullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
