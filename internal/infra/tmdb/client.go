// Package infra_tmdb issues discover and genre-list queries against the
// external movie/TV catalog API. The client owns the outbound resilience
// budget: a minimum inter-request interval, a single bounded backoff retry
// on upstream throttling, and a first-pass structural filter so obviously
// broken items never reach the engine's validation gate.
package infra_tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/reelswipe/core/internal/model"
	"github.com/reelswipe/core/internal/service/crosswalk"
)

var (
	ErrRateLimited   = errors.New("catalog rate limit exceeded")
	ErrRequestFailed = errors.New("catalog request failed")
	ErrBadResponse   = errors.New("malformed catalog response")
)

const (
	// DefaultRequestInterval keeps outbound traffic at 4 requests/second.
	DefaultRequestInterval = 250 * time.Millisecond

	// minVoteCount is the fixed quality floor on every discover query.
	minVoteCount = 100

	backoffBase  = time.Second
	backoffCycle = 5
	maxBackoff   = 30 * time.Second

	maxErrorBodySize = 4 * 1024
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger

	// requestCount feeds the backoff schedule, which cycles with the
	// total number of requests issued by this client instance.
	requestCount atomic.Int64
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

func WithRequestInterval(interval time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

func New(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(DefaultRequestInterval), 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover runs one page of a discover query. Genre ids of TV queries are
// passed through the crosswalk before hitting the wire, since the two
// taxonomies disagree on several identifiers.
func (c *Client) Discover(ctx context.Context, req model.DiscoverRequest) ([]model.RawItem, error) {
	path := "/discover/movie"
	genreIDs := req.GenreIDs
	known := crosswalk.KnownMovieGenre
	if req.MediaType == model.MediaTypeTV {
		path = "/discover/tv"
		genreIDs = crosswalk.ToTV(genreIDs)
		known = crosswalk.KnownTVGenre
	}
	for _, id := range genreIDs {
		if !known(id) {
			c.logger.Debug("genre id unknown to the target taxonomy",
				slog.Int("genre_id", id),
				slog.String("media_type", string(req.MediaType)),
			)
		}
	}

	params := url.Values{}
	params.Set("sort_by", string(req.SortBy))
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("vote_count.gte", strconv.Itoa(minVoteCount))
	params.Set("include_adult", "false")
	if len(genreIDs) > 0 {
		params.Set("with_genres", joinGenres(genreIDs, req.GenreMode))
	}

	var dto discoverResponseDTO
	if err := c.get(ctx, path, params, &dto); err != nil {
		return nil, err
	}

	items := make([]model.RawItem, 0, len(dto.Results))
	dropped := 0
	for _, r := range dto.Results {
		item := r.toRawItem()
		// First structural pass: items with no usable identity never leave
		// the client. Shape mismatches are kept so the engine's stricter
		// gate can apply the deployment's contamination policy.
		if item.ID == "" || item.Shape == model.ShapeUnknown || item.Adult {
			dropped++
			continue
		}
		items = append(items, item)
	}
	if dropped > 0 {
		c.logger.Debug("dropped structurally invalid catalog items",
			slog.Int("dropped", dropped),
			slog.Int("page", req.Page),
			slog.String("media_type", string(req.MediaType)),
		)
	}

	return items, nil
}

// Genres lists the catalog's genre taxonomy for the media type.
func (c *Client) Genres(ctx context.Context, mt model.MediaType) ([]model.Genre, error) {
	path := "/genre/movie/list"
	if mt == model.MediaTypeTV {
		path = "/genre/tv/list"
	}

	var dto genreListDTO
	if err := c.get(ctx, path, url.Values{}, &dto); err != nil {
		return nil, err
	}
	return toGenres(dto.Genres), nil
}

// get performs one logical request: wait out the inter-request interval,
// issue the call, and on upstream throttling back off once and retry. A
// second throttle surfaces as ErrRateLimited.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		n := c.requestCount.Add(1)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			_ = resp.Body.Close()
			if attempt >= 1 {
				return fmt.Errorf("%w: still throttled after backoff retry", ErrRateLimited)
			}

			delay := backoffDelay(n)
			c.logger.Warn("catalog throttled request, backing off",
				slog.Duration("delay", delay),
				slog.Int64("request_count", n),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrRequestFailed, ctx.Err())
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			_ = resp.Body.Close()
			return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBadResponse, err)
		}
		return nil
	}
}

// backoffDelay follows min(1s * 2^(requestCount mod 5), 30s).
func backoffDelay(requestCount int64) time.Duration {
	d := backoffBase << uint(requestCount%backoffCycle)
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func joinGenres(ids []int, mode model.GenreMode) string {
	sep := ","
	if mode == model.GenreModeAny {
		sep = "|"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}
