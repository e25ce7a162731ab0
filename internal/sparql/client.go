// Package sparql is a small read-only client for SPARQL 1.1 query endpoints
// returning application/sparql-results+json.
package sparql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"
)

// ErrRemote marks failures reported by, or while reaching, the remote endpoint.
var ErrRemote = errors.New("remote endpoint failure")

// Binding is one solution row, variable name to lexical value.
// Unbound variables are absent.
type Binding map[string]string

type term struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type response struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]term `json:"bindings"`
	} `json:"results"`
}

// Client queries a single SPARQL endpoint.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	cache      gcache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header. Wikidata rejects anonymous clients.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithCache keeps up to size responses keyed by query text. A size of zero
// disables caching; a ttl of zero keeps entries until evicted.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		if size <= 0 {
			c.cache = nil
			return
		}
		b := gcache.New(size).LRU()
		if ttl > 0 {
			b = b.Expiration(ttl)
		}
		c.cache = b.Build()
	}
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Query runs a SELECT query and returns its bindings.
func (c *Client) Query(ctx context.Context, query string) ([]Binding, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get(query); err == nil {
			log.Debug().Str("endpoint", c.endpoint).Msg("sparql cache hit")
			return cached.([]Binding), nil
		}
	}

	start := time.Now()
	bindings, err := c.do(ctx, query)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("endpoint", c.endpoint).
		Int("rows", len(bindings)).
		Dur("took", time.Since(start)).
		Msg("sparql query")

	if c.cache != nil {
		if err := c.cache.Set(query, bindings); err != nil {
			log.Warn().Err(err).Msg("sparql: cache set failed")
		}
	}
	return bindings, nil
}

func (c *Client) do(ctx context.Context, query string) ([]Binding, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("sparql: invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("sparql: build request: %w", err)
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql: %w: %w", ErrRemote, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sparql: %w: HTTP %d from %s: %s",
			ErrRemote, resp.StatusCode, c.endpoint, strings.TrimSpace(string(body)))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("sparql: %w: decode results: %w", ErrRemote, err)
	}

	bindings := make([]Binding, 0, len(r.Results.Bindings))
	for _, row := range r.Results.Bindings {
		b := make(Binding, len(row))
		for name, t := range row {
			b[name] = t.Value
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
