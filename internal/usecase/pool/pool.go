package usecase_pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/reelswipe/core/internal/model"
)

var (
	ErrIncompleteResult     = errors.New("incomplete result")
	ErrFailedToQueryCatalog = errors.New("failed to query catalog")
	ErrFailedToLoadRecords  = errors.New("failed to load pool records")
)

const (
	DefaultPoolSize = 50

	maxPagesPerTier = 5

	// Tier 1 contributes at most 3/5 of the pool, leaving room for the
	// broader tiers even when the AND-match is deep.
	tier1Numerator   = 3
	tier1Denominator = 5
)

type CatalogClient interface {
	Discover(ctx context.Context, req model.DiscoverRequest) ([]model.RawItem, error)
}

type FilterCache interface {
	Get(ctx context.Context, mt model.MediaType, genreIDs []int) ([]model.ContentEntry, bool, error)
	Set(ctx context.Context, mt model.MediaType, genreIDs []int, content []model.ContentEntry) error
}

type ExclusionStore interface {
	Track(ctx context.Context, roomID model.RoomID, catalogIDs []string) error
	Excluded(ctx context.Context, roomID model.RoomID) (map[string]struct{}, error)
}

type RecordStore interface {
	Store(ctx context.Context, rec model.PoolRecord) error
	LoadByRoom(ctx context.Context, roomID model.RoomID) ([]model.PoolRecord, error)
}

type Config struct {
	// PoolSize is the exact number of entries every successful pool carries.
	PoolSize int

	// StrictValidation aborts the entire retrieval on the first contaminated
	// item instead of discarding it and continuing.
	StrictValidation bool
}

type Usecase struct {
	catalog    CatalogClient
	cache      FilterCache
	exclusions ExclusionStore
	records    RecordStore
	config     Config
	logger     *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	catalog CatalogClient,
	cache FilterCache,
	exclusions ExclusionStore,
	records RecordStore,
	config Config,
	opts ...Option,
) *Usecase {
	if config.PoolSize <= 0 {
		config.PoolSize = DefaultPoolSize
	}
	u := &Usecase{
		catalog:    catalog,
		cache:      cache,
		exclusions: exclusions,
		records:    records,
		config:     config,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateFilteredPool assembles exactly PoolSize validated, deduplicated
// entries for the room's criteria. A cached pool is reused when it still
// covers the room's exclusions; otherwise the three retrieval tiers run in
// order until the pool is full. A short pool is never returned.
func (u *Usecase) CreateFilteredPool(ctx context.Context, criteria model.FilterCriteria) ([]model.ContentEntry, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	excluded, err := u.exclusions.Excluded(ctx, criteria.RoomID)
	if err != nil {
		u.logger.Warn("failed to load room exclusions", "room_id", criteria.RoomID, "error", err)
		excluded = map[string]struct{}{}
	}

	if pool, ok := u.fromCache(ctx, criteria, excluded); ok {
		return pool, nil
	}

	pool, tierCounts, err := u.assemble(ctx, criteria, excluded)
	if err != nil {
		return nil, err
	}

	// A pool assembled around a room's exclusions is biased toward that
	// room. The cache is keyed by criteria alone, so only unbiased pools
	// are written back.
	if len(excluded) == 0 {
		if err := u.cache.Set(ctx, criteria.MediaType, criteria.GenreIDs, pool); err != nil {
			u.logger.Warn("failed to cache pool", "cache_key", model.CacheKey(criteria.MediaType, criteria.GenreIDs), "error", err)
		}
	}
	u.finish(ctx, criteria, pool, tierCounts, false)

	return pool, nil
}

// Records returns the provenance rows written for a room, newest first.
func (u *Usecase) Records(ctx context.Context, roomID model.RoomID) ([]model.PoolRecord, error) {
	recs, err := u.records.LoadByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadRecords, err)
	}
	return recs, nil
}

// fromCache serves the criteria from the filter cache when enough cached
// entries survive the room's exclusion set. Cache errors count as misses.
func (u *Usecase) fromCache(ctx context.Context, criteria model.FilterCriteria, excluded map[string]struct{}) ([]model.ContentEntry, bool) {
	cached, ok, err := u.cache.Get(ctx, criteria.MediaType, criteria.GenreIDs)
	if err != nil {
		u.logger.Warn("failed to read filter cache", "cache_key", model.CacheKey(criteria.MediaType, criteria.GenreIDs), "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	pool := make([]model.ContentEntry, 0, u.config.PoolSize)
	for _, entry := range cached {
		if _, seen := excluded[entry.CatalogID]; seen {
			continue
		}
		pool = append(pool, entry)
		if len(pool) == u.config.PoolSize {
			break
		}
	}
	if len(pool) < u.config.PoolSize {
		u.logger.Debug("cached pool exhausted by exclusions, refetching",
			"cache_key", model.CacheKey(criteria.MediaType, criteria.GenreIDs),
			"usable", len(pool),
		)
		return nil, false
	}

	var tierCounts [3]int
	for _, entry := range pool {
		if t := entry.PriorityTier; t >= 1 && t <= 3 {
			tierCounts[t-1]++
		}
	}
	u.finish(ctx, criteria, pool, tierCounts, true)

	return pool, true
}

// assemble runs the retrieval tiers in strict order. The used set is seeded
// with the room's exclusions so already-shown items never re-enter a pool.
func (u *Usecase) assemble(ctx context.Context, criteria model.FilterCriteria, excluded map[string]struct{}) ([]model.ContentEntry, [3]int, error) {
	target := u.config.PoolSize

	used := make(map[string]struct{}, len(excluded)+target)
	for id := range excluded {
		used[id] = struct{}{}
	}

	pool := make([]model.ContentEntry, 0, target)
	var tierCounts [3]int

	if len(criteria.GenreIDs) > 0 {
		quota := target * tier1Numerator / tier1Denominator
		accepted, err := u.runTier(ctx, criteria.MediaType, 1, model.DiscoverRequest{
			MediaType: criteria.MediaType,
			GenreIDs:  criteria.GenreIDs,
			GenreMode: model.GenreModeAll,
			SortBy:    model.SortByRating,
		}, quota, used)
		if err != nil {
			return nil, tierCounts, err
		}
		tierCounts[0] = len(accepted)
		pool = append(pool, accepted...)

		if len(pool) < target {
			accepted, err = u.runTier(ctx, criteria.MediaType, 2, model.DiscoverRequest{
				MediaType: criteria.MediaType,
				GenreIDs:  criteria.GenreIDs,
				GenreMode: model.GenreModeAny,
				SortBy:    model.SortByPopularity,
			}, target-len(pool), used)
			if err != nil {
				return nil, tierCounts, err
			}
			tierCounts[1] = len(accepted)
			pool = append(pool, accepted...)
		}
	}

	if len(pool) < target {
		accepted, err := u.runTier(ctx, criteria.MediaType, 3, model.DiscoverRequest{
			MediaType: criteria.MediaType,
			SortBy:    model.SortByPopularity,
		}, target-len(pool), used)
		if err != nil {
			return nil, tierCounts, err
		}
		tierCounts[2] = len(accepted)
		pool = append(pool, accepted...)
	}

	if len(pool) < target {
		return nil, tierCounts, fmt.Errorf("%w: assembled %d of %d entries", ErrIncompleteResult, len(pool), target)
	}

	return pool[:target], tierCounts, nil
}

// runTier pages through one discover query until the tier's contribution
// target is met, a page comes back empty, or the page budget is spent.
// Accepted ids are added to used as they are taken, so later pages and
// tiers dedup against earlier ones.
func (u *Usecase) runTier(ctx context.Context, mt model.MediaType, tier int, req model.DiscoverRequest, want int, used map[string]struct{}) ([]model.ContentEntry, error) {
	accepted := make([]model.ContentEntry, 0, want)
	rejected := 0
	now := time.Now()

	for page := 1; page <= maxPagesPerTier && len(accepted) < want; page++ {
		req.Page = page
		items, err := u.catalog.Discover(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d page %d: %w", ErrFailedToQueryCatalog, tier, page, err)
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if len(accepted) == want {
				break
			}
			if _, seen := used[item.ID]; seen {
				continue
			}

			entry, reason, err := validateItem(item, mt, tier, now)
			if err != nil {
				if u.config.StrictValidation {
					return nil, err
				}
				u.logger.Warn("discarding contaminated catalog item", "catalog_id", item.ID, "tier", tier, "error", err)
				rejected++
				continue
			}
			if reason != "" {
				u.logger.Debug("rejected catalog item", "catalog_id", item.ID, "tier", tier, "reason", reason)
				rejected++
				continue
			}

			used[entry.CatalogID] = struct{}{}
			accepted = append(accepted, entry)
		}
	}

	u.logger.Debug("tier finished",
		"tier", tier,
		"accepted", len(accepted),
		"rejected", rejected,
		"target", want,
	)

	return accepted, nil
}

// finish performs the non-fatal bookkeeping of a served pool: exclusion
// tracking and the provenance record.
func (u *Usecase) finish(ctx context.Context, criteria model.FilterCriteria, pool []model.ContentEntry, tierCounts [3]int, fromCache bool) {
	ids := make([]string, len(pool))
	for i, entry := range pool {
		ids[i] = entry.CatalogID
	}
	if err := u.exclusions.Track(ctx, criteria.RoomID, ids); err != nil {
		u.logger.Warn("failed to track shown items", "room_id", criteria.RoomID, "error", err)
	}

	rec := model.PoolRecord{
		ID:         uuid.New(),
		RoomID:     criteria.RoomID,
		CacheKey:   model.CacheKey(criteria.MediaType, criteria.GenreIDs),
		MediaType:  criteria.MediaType,
		GenreIDs:   criteria.GenreIDs,
		PoolSize:   len(pool),
		TierCounts: tierCounts,
		FromCache:  fromCache,
		CreatedAt:  time.Now(),
	}
	if err := u.records.Store(ctx, rec); err != nil {
		u.logger.Warn("failed to store pool record", "room_id", criteria.RoomID, "error", err)
	}
}
