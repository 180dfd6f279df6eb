// Package github is the API-access service of gh-peek. It wraps the GitHub
// REST API with rate-limit tracking, optional response caching, pagination,
// and uniform error normalization. All operations are read-only.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ghpeek/gh-peek/internal/logger"
)

// Default configuration values
const (
	// DefaultCacheTTL is the default cache time-to-live
	DefaultCacheTTL = 5 * time.Minute

	// DefaultRateLimitThreshold is the remaining-quota level below which the
	// client starts refreshing authoritative rate-limit state
	DefaultRateLimitThreshold = 100

	// DefaultPerPage is the default page size for single-page listings
	DefaultPerPage = 30

	// DefaultUserAgent identifies this client to the API
	DefaultUserAgent = "gh-peek"
)

// Config holds configuration options for the client. It is fixed at
// construction and never mutated afterwards.
type Config struct {
	// UserAgent is sent with every request
	UserAgent string

	// Host is the API host; empty targets github.com
	Host string

	// EnableCache enables response caching
	EnableCache bool

	// CacheTTL is the cache time-to-live duration
	CacheTTL time.Duration

	// RateLimitThreshold is the remaining-quota level that triggers
	// authoritative refreshes
	RateLimitThreshold int

	// FailOnRateLimit makes an exhausted quota fail immediately instead of
	// waiting for the reset
	FailOnRateLimit bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		UserAgent:          DefaultUserAgent,
		EnableCache:        true,
		CacheTTL:           DefaultCacheTTL,
		RateLimitThreshold: DefaultRateLimitThreshold,
		FailOnRateLimit:    false,
	}
}

// Client provides the public API surface: user and repository lookups,
// contributor listings, and quota status. Each operation composes the cache,
// the rate-limit tracker, the transport, and error normalization.
type Client struct {
	transport Transport
	config    *Config
	cache     *memoryCache
	limiter   *tracker
}

// ClientOption is a functional option for configuring the Client
type ClientOption func(*Client) error

// NewClient creates a new client authenticated with token. Construction
// fails before any network access when the token is empty, unless a custom
// transport is supplied.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	client := &Client{config: DefaultConfig()}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, fmt.Errorf("failed to apply client option: %w", err)
		}
	}

	if client.transport == nil {
		if token == "" {
			return nil, NewAuthenticationError("no access token provided (set GITHUB_TOKEN)", nil)
		}
		transport, err := newRESTTransport(token, client.config.Host, client.config.UserAgent)
		if err != nil {
			return nil, NewAuthenticationError("failed to create REST client", err)
		}
		client.transport = transport
	}

	if client.config.EnableCache {
		client.cache = newMemoryCache()
	}
	client.limiter = newTracker(client.config.RateLimitThreshold, client.config.FailOnRateLimit)

	return client, nil
}

// GetUser retrieves the profile of a single user.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	op := fmt.Sprintf("get user %s", username)
	key := cacheKey("user", username)

	return cached(c.cache, key, c.config.CacheTTL, func() (*User, error) {
		var user User
		if err := c.do(ctx, op, "users/"+url.PathEscape(username), &user); err != nil {
			return nil, err
		}
		return &user, nil
	})
}

// GetRepository retrieves metadata for a single repository.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	op := fmt.Sprintf("get repository %s/%s", owner, name)
	key := cacheKey("repo", owner+"/"+name)

	return cached(c.cache, key, c.config.CacheTTL, func() (*Repository, error) {
		var repo Repository
		path := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
		if err := c.do(ctx, op, path, &repo); err != nil {
			return nil, err
		}
		return &repo, nil
	})
}

// ListUserRepositories retrieves up to perPage of a user's repositories,
// most recently updated first. The upstream returns a single page sized by
// perPage, so this is not paginated.
func (c *Client) ListUserRepositories(ctx context.Context, username string, perPage int) ([]Repository, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	op := fmt.Sprintf("list repositories for user %s", username)
	key := cacheKey("userRepos", username)

	return cached(c.cache, key, c.config.CacheTTL, func() ([]Repository, error) {
		query := url.Values{
			"per_page":  {strconv.Itoa(perPage)},
			"sort":      {"updated"},
			"direction": {"desc"},
		}
		path := fmt.Sprintf("users/%s/repos?%s", url.PathEscape(username), query.Encode())

		var repos []Repository
		if err := c.do(ctx, op, path, &repos); err != nil {
			return nil, err
		}
		return repos, nil
	})
}

// ListContributors retrieves up to limit contributors of a repository,
// ordered by contribution count. Results are never cached; the listing
// changes with every push and is typically requested once per invocation.
func (c *Client) ListContributors(ctx context.Context, owner, name string, limit int) ([]Contributor, error) {
	op := fmt.Sprintf("list contributors for %s/%s", owner, name)

	return collectPages(ctx, limit, func(ctx context.Context, page, perPage int) ([]Contributor, error) {
		query := url.Values{
			"per_page": {strconv.Itoa(perPage)},
			"page":     {strconv.Itoa(page)},
		}
		path := fmt.Sprintf("repos/%s/%s/contributors?%s",
			url.PathEscape(owner), url.PathEscape(name), query.Encode())

		var contributors []Contributor
		if err := c.do(ctx, op, path, &contributors); err != nil {
			return nil, err
		}
		return contributors, nil
	})
}

// GetRateLimit retrieves the authoritative quota status. It bypasses both
// the cache and the rate-limit gate (the endpoint itself is not counted
// against the quota) and overwrites the tracker's state on success.
func (c *Client) GetRateLimit(ctx context.Context) (*RateLimit, error) {
	var response rateLimitResponse
	if err := c.transport.Get(ctx, "rate_limit", &response); err != nil {
		return nil, normalizeError("get rate limit", err)
	}

	c.limiter.setStatus(response.Rate)
	return &response.Rate, nil
}

// ClearCache drops all cached responses.
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// do runs one gated transport call and applies the standard quota
// bookkeeping. It is the single point where failures are normalized, so
// every failing operation surfaces through it exactly once.
func (c *Client) do(ctx context.Context, op, path string, response interface{}) error {
	refreshAfter, err := c.limiter.gate(ctx)
	if err != nil {
		return normalizeError(op, err)
	}

	callErr := c.transport.Get(ctx, path, response)

	// The call consumed quota whether or not it succeeded.
	if c.limiter.record() || refreshAfter {
		c.refreshRateLimit()
	}

	if callErr != nil {
		return normalizeError(op, callErr)
	}
	return nil
}

// ClientOption implementations

// WithHost targets a GitHub Enterprise host instead of github.com
func WithHost(host string) ClientOption {
	return func(c *Client) error {
		c.config.Host = host
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) error {
		if userAgent == "" {
			return fmt.Errorf("user agent must not be empty")
		}
		c.config.UserAgent = userAgent
		return nil
	}
}

// WithCacheTTL sets the cache time-to-live duration
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) error {
		if ttl < 0 {
			ttl = 0
		}
		c.config.CacheTTL = ttl
		return nil
	}
}

// WithoutCache disables response caching
func WithoutCache() ClientOption {
	return func(c *Client) error {
		c.config.EnableCache = false
		return nil
	}
}

// WithRateLimitThreshold sets the remaining-quota level below which the
// client starts refreshing authoritative rate-limit state
func WithRateLimitThreshold(threshold int) ClientOption {
	return func(c *Client) error {
		if threshold < 0 {
			threshold = 0
		}
		c.config.RateLimitThreshold = threshold
		return nil
	}
}

// WithFailOnRateLimit makes an exhausted quota fail immediately instead of
// waiting for the reset
func WithFailOnRateLimit(fail bool) ClientOption {
	return func(c *Client) error {
		c.config.FailOnRateLimit = fail
		return nil
	}
}

// WithTransport sets a custom transport, bypassing REST client construction.
// Intended for tests.
func WithTransport(transport Transport) ClientOption {
	return func(c *Client) error {
		c.transport = transport
		return nil
	}
}

// refreshRateLimit refreshes the tracker from the rate_limit endpoint in the
// background. At most one refresh is in flight at a time; failures are
// logged and never escalated, leaving the tracker in its previous state
// until the next attempt.
func (c *Client) refreshRateLimit() {
	if !c.limiter.beginRefresh() {
		return
	}

	go func() {
		defer c.limiter.endRefresh()

		var response rateLimitResponse
		if err := c.transport.Get(context.Background(), "rate_limit", &response); err != nil {
			logger.Debug().Err(err).Msg("Rate limit refresh failed")
			return
		}
		c.limiter.setStatus(response.Rate)

		logger.Debug().
			Int("remaining", response.Rate.Remaining).
			Int("limit", response.Rate.Limit).
			Msg("Refreshed rate limit state")
	}()
}
