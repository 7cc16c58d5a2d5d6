// Package sleeper provides the read-only HTTP client for the Sleeper
// fantasy football API.
//
// Sleeper needs no auth. Requests are rate limited client-side with a token
// bucket and league summaries are cached by path.
package sleeper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fwl-league/fwl-hub/internal/cache"
)

// ErrNotFound is returned when Sleeper has no record for the requested
// league. Sleeper answers unknown leagues with a 200 and a null body, so
// both that and a 404 map here.
var ErrNotFound = errors.New("sleeper: not found")

// StatusError reports a non-200, non-404 response.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sleeper %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Recorder observes outgoing requests. Implemented by internal/metrics.
type Recorder interface {
	ObserveSleeperRequest(endpoint string, outcome string, duration time.Duration)
}

// TTLLeagueInfo is how long league summaries stay cached. League data is
// never cached here: callers cache the shaped result themselves.
const TTLLeagueInfo = 1 * time.Hour

const noCache time.Duration = 0

// Client is the HTTP client for Sleeper endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      *cache.Cache
	recorder   Recorder
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default 30s-timeout HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables response caching.
func WithCache(cc *cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}

// WithRecorder attaches a request recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a Sleeper HTTP client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 5),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchLeagueInfo returns the league summary.
func (c *Client) FetchLeagueInfo(ctx context.Context, leagueID string) (*League, error) {
	var league League
	if err := c.getJSON(ctx, "league", "/league/"+leagueID, TTLLeagueInfo, &league); err != nil {
		return nil, fmt.Errorf("fetch league info %s: %w", leagueID, err)
	}
	return &league, nil
}

// FetchLeagueData returns the league with its users, rosters, current-week
// matchups and transactions, and the winners bracket. The league is fetched
// first to learn the current week; the rest are fetched concurrently and
// any single failure fails the whole call.
func (c *Client) FetchLeagueData(ctx context.Context, leagueID string) (*LeagueData, error) {
	base := "/league/" + leagueID

	var data LeagueData
	if err := c.getJSON(ctx, "league", base, noCache, &data.League); err != nil {
		return nil, fmt.Errorf("fetch league data %s: %w", leagueID, err)
	}
	data.Week = data.League.Settings.Leg
	if data.Week <= 0 {
		data.Week = 1
	}
	week := strconv.Itoa(data.Week)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "users", base+"/users", noCache, &data.Users)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "rosters", base+"/rosters", noCache, &data.Rosters)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "matchups", base+"/matchups/"+week, noCache, &data.Matchups)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "transactions", base+"/transactions/"+week, noCache, &data.Transactions)
	})
	g.Go(func() error {
		err := c.getJSON(gctx, "winners_bracket", base+"/winners_bracket", noCache, &data.WinnersBracket)
		// Leagues before their playoffs have no bracket yet.
		if errors.Is(err, ErrNotFound) {
			data.WinnersBracket = nil
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch league data %s: %w", leagueID, err)
	}
	return &data, nil
}

// getJSON performs a rate-limited GET and decodes the body into v. A
// positive ttl caches the body; entries are keyed by ttl class so payloads
// cached for different lifetimes never share an entry. endpoint is the
// low-cardinality label used for metrics.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, ttl time.Duration, v any) error {
	cached := c.cache != nil && ttl > 0
	cacheKey := "sleeper:" + ttl.String() + ":" + path
	if cached {
		if data, _, ok := c.cache.Get(cacheKey); ok {
			c.observe(endpoint, "cache_hit", 0)
			return json.Unmarshal(data, v)
		}
	}

	start := time.Now()
	body, err := c.get(ctx, path)
	if err != nil {
		c.observe(endpoint, outcomeOf(err), time.Since(start))
		return err
	}
	c.observe(endpoint, "ok", time.Since(start))

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if cached {
		c.cache.Set(cacheKey, body, ttl)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: truncate(body, 200)}
	}

	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNotFound
	}

	c.logger.Debug("sleeper request", "path", path, "bytes", len(body))
	return body, nil
}

func (c *Client) observe(endpoint, outcome string, d time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveSleeperRequest(endpoint, outcome, d)
	}
}

func outcomeOf(err error) string {
	var se *StatusError
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.As(err, &se):
		return "status_" + strconv.Itoa(se.StatusCode)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
