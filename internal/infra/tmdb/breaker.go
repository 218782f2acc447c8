package infra_tmdb

import (
	"context"

	"github.com/reelswipe/core/internal/model"
	"github.com/reelswipe/core/internal/service/breaker"
)

// BreakerClient guards a Client with a shared circuit breaker. Discover and
// genre-list calls count against the same circuit; while it is open both
// fail fast with breaker.ErrCircuitOpen.
type BreakerClient struct {
	client *Client
	cb     *breaker.Breaker
}

func NewBreakerClient(client *Client, cb *breaker.Breaker) *BreakerClient {
	return &BreakerClient{client: client, cb: cb}
}

func (b *BreakerClient) Discover(ctx context.Context, req model.DiscoverRequest) ([]model.RawItem, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.client.Discover(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.RawItem), nil
}

func (b *BreakerClient) Genres(ctx context.Context, mt model.MediaType) ([]model.Genre, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.client.Genres(ctx, mt)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Genre), nil
}

// State reports the circuit state for health endpoints.
func (b *BreakerClient) State() string {
	return b.cb.State()
}
