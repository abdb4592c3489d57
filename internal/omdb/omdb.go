// Package omdb is a minimal client for OMDB's title lookup API, used by
// organize-episodes to confirm a release-derived show title actually
// resolves to a known series before filing an episode under it. Grounded
// on pkg/prowlarr's HTTP client shape: a small Config, a timeout'd
// http.Client, and one JSON-decoding call per endpoint.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/torrentreconcile/xseed/pkg/httphelpers"
	"github.com/torrentreconcile/xseed/pkg/redact"
)

const baseURL = "https://www.omdbapi.com/"

// Config holds the options for constructing a Client.
type Config struct {
	APIKey     string
	HTTPClient *http.Client
	// BaseURL overrides baseURL; used by tests to point at an httptest server.
	BaseURL string
}

// Client is a minimal OMDB API wrapper.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client. A zero Config's APIKey means every lookup
// short-circuits with ErrNoAPIKey, letting callers wire this in
// unconditionally and only pay for the network round-trip when an API key
// is actually configured.
func NewClient(cfg Config) *Client {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	base := cfg.BaseURL
	if base == "" {
		base = baseURL
	}
	return &Client{apiKey: cfg.APIKey, httpClient: client, baseURL: base}
}

// ErrNoAPIKey is returned by Lookup when no OMDB API key is configured.
var ErrNoAPIKey = fmt.Errorf("omdb: no api key configured")

// Title is the subset of OMDB's title response this tool cares about.
type Title struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Type     string `json:"Type"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Lookup queries OMDB for a show by title, returning the canonical title
// record OMDB has on file. Network and API errors have any apikey query
// parameter redacted before being returned, since this error is typically
// only ever logged.
func (c *Client) Lookup(ctx context.Context, title string) (*Title, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("t", strings.TrimSpace(title))
	q.Set("type", "series")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, redact.URLError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, redact.URLError(err)
	}
	defer httphelpers.DrainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb: unexpected status %d", resp.StatusCode)
	}

	var result Title
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("omdb: decode response: %w", err)
	}
	if result.Response == "False" {
		return nil, fmt.Errorf("omdb: %s", result.Error)
	}

	return &result, nil
}
