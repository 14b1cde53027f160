// Package hypixel provides the HTTP client that resolves a player name and
// fetches the full player record from the Hypixel API.
//
// Hypixel uses API-Key header auth and a per-key request quota, so every
// call goes through a token bucket limiter. Outcomes are tri-state: a
// record, ErrPlayerNotFound, or a wrapped transient/API error. The
// extraction core never sees a malformed record — on any failure it is
// simply not invoked.
package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hollowellis/hypixel-data/internal/cache"
	"github.com/hollowellis/hypixel-data/internal/record"
)

// DefaultBaseURL is the public Hypixel API endpoint.
const DefaultBaseURL = "https://api.hypixel.net"

// Client is a rate-limited Hypixel API client with an optional record
// cache in front of the network.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	records    *cache.Cache
	recordTTL  time.Duration
	logger     *slog.Logger
}

// Options tunes a Client. Zero values fall back to sane defaults.
type Options struct {
	BaseURL           string
	RequestsPerMinute int
	Timeout           time.Duration
	Cache             *cache.Cache // nil disables caching
	CacheTTL          time.Duration
}

// NewClient creates a Hypixel client with rate limiting.
func NewClient(apiKey string, opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 120
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	rps := float64(opts.RequestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		records:    opts.Cache,
		recordTTL:  opts.CacheTTL,
		logger:     logger,
	}
}

// envelope is the common Hypixel response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Cause   string          `json:"cause"`
	Player  json.RawMessage `json:"player"`
}

// get performs a rate-limited GET against the player endpoint.
func (c *Client) get(ctx context.Context, params url.Values) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + "/player?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request /player: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Cause: env.Cause}
	}
	return &env, nil
}

// ResolveUUID looks up a player's stable UUID by display name.
func (c *Client) ResolveUUID(ctx context.Context, name string) (string, error) {
	env, err := c.get(ctx, url.Values{"name": {name}})
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}
	if len(env.Player) == 0 || string(env.Player) == "null" {
		return "", fmt.Errorf("resolve %q: %w", name, ErrPlayerNotFound)
	}
	uuid := record.FromJSON(env.Player).Str("uuid", "")
	if uuid == "" {
		return "", fmt.Errorf("resolve %q: %w", name, ErrPlayerNotFound)
	}
	return uuid, nil
}

// FetchByUUID fetches the full player record for a UUID.
func (c *Client) FetchByUUID(ctx context.Context, uuid string) (record.Record, error) {
	env, err := c.get(ctx, url.Values{"uuid": {uuid}})
	if err != nil {
		return record.Record{}, fmt.Errorf("fetch player %s: %w", uuid, err)
	}
	if len(env.Player) == 0 || string(env.Player) == "null" {
		return record.Record{}, fmt.Errorf("fetch player %s: %w", uuid, ErrPlayerNotFound)
	}
	return record.FromJSON(env.Player), nil
}

// ResolveAndFetch resolves a display name to a UUID and fetches the full
// player record, consulting the record cache first when one is configured.
func (c *Client) ResolveAndFetch(ctx context.Context, name string) (record.Record, error) {
	key := "player:" + strings.ToLower(strings.TrimSpace(name))

	if c.records != nil {
		if data, ok := c.records.Get(key); ok {
			c.logger.Debug("record cache hit", "player", name)
			return record.FromJSON(data), nil
		}
	}

	uuid, err := c.ResolveUUID(ctx, name)
	if err != nil {
		return record.Record{}, err
	}
	c.logger.Debug("resolved player", "player", name, "uuid", uuid)

	rec, err := c.FetchByUUID(ctx, uuid)
	if err != nil {
		return record.Record{}, err
	}

	if c.records != nil {
		c.records.Set(key, []byte(rec.Raw()), c.recordTTL)
	}
	return rec, nil
}
