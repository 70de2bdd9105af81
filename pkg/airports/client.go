// Package airports talks to the remote airport lookup services and
// normalizes their responses into models.Airport.
package airports

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// DefaultTimeout bounds a single lookup when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Fetcher looks up airports matching a query
type Fetcher interface {
	Name() string
	Lookup(ctx context.Context, query string) ([]models.Airport, error)
}

// adapter knows one upstream request and response shape
type adapter interface {
	name() string
	defaultEndpoint() string
	newRequest(ctx context.Context, endpoint, apiKey, query string) (*http.Request, error)
	decode(body io.Reader) ([]models.Airport, error)
}

// Config configures a Client
type Config struct {
	Endpoint   string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// Client is a Fetcher backed by one upstream provider. It is safe for
// concurrent use.
type Client struct {
	adapter  adapter
	endpoint string
	apiKey   string
	timeout  time.Duration
	http     *http.Client
	limiter  *rate.Limiter
}

// NewClient creates a client for the named provider
func NewClient(provider string, cfg Config) (*Client, error) {
	var a adapter
	switch provider {
	case models.ProviderNinjas:
		a = ninjasAdapter{}
	case models.ProviderAviationstack:
		a = aviationstackAdapter{}
	default:
		return nil, fmt.Errorf("unknown lookup provider %q", provider)
	}

	c := &Client{
		adapter:  a,
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		timeout:  cfg.Timeout,
		http:     cfg.HTTPClient,
		limiter:  cfg.Limiter,
	}
	if c.endpoint == "" {
		c.endpoint = a.defaultEndpoint()
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return c, nil
}

// NewClientFromSettings creates a client from the lookup section of the settings
func NewClientFromSettings(s models.LookupSettings) (*Client, error) {
	return NewClient(s.Provider, Config{
		Endpoint: s.Endpoint,
		APIKey:   s.APIKey,
		Timeout:  s.Timeout,
		Limiter:  NewLimiter(s.RateLimit),
	})
}

// Name returns the provider name
func (c *Client) Name() string {
	return c.adapter.name()
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Lookup fetches airports for query. Every failure is a *LookupError.
func (c *Client) Lookup(ctx context.Context, query string) ([]models.Airport, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, newLookupError(c.Name(), query, 0, err)
	}

	req, err := c.adapter.newRequest(ctx, c.endpoint, c.apiKey, query)
	if err != nil {
		return nil, newLookupError(c.Name(), query, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newLookupError(c.Name(), query, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, newLookupError(c.Name(), query, resp.StatusCode, nil)
	}

	airports, err := c.adapter.decode(resp.Body)
	if err != nil {
		return nil, newLookupError(c.Name(), query, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return airports, nil
}
