package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Config configures the API client.
type Config struct {
	// BaseURL is the fixed base origin every request is issued against.
	BaseURL string
	// Timeout bounds each request; zero means DefaultTimeout.
	Timeout time.Duration
	// Logger receives request-level debug logging. Optional.
	Logger zerolog.Logger
}

// Client issues requests against the hiredash backend. It carries a cookie
// jar so a backend session cookie set at login is presented on subsequent
// calls, including the session probe.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// New creates a Client for the given configuration.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout, Jar: jar},
		log:  cfg.Logger,
	}, nil
}

// BaseURL returns the client's base origin.
func (c *Client) BaseURL() *url.URL {
	return c.base
}

// AbsoluteURL resolves a possibly-relative link against the base origin.
// Absolute URLs pass through unchanged; empty or unparsable links return
// the empty string.
func (c *Client) AbsoluteURL(link string) string {
	if link == "" {
		return ""
	}
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return link
	}
	return c.base.ResolveReference(ref).String()
}

// Request issues a single HTTP request and decodes the JSON response body
// into out (skipped when out is nil). The Content-Type header defaults to
// application/json; extra headers override it. No retry is performed at this
// layer. Failures are surfaced as *NetworkError, *HTTPError or *ParseError
// so callers can render distinct messages.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body, out any, headers map[string]string) error {
	endpoint := c.base.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("issuing request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: path, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("request failed")
		return &HTTPError{Status: resp.StatusCode, Endpoint: path}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Endpoint: path, Cause: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Endpoint: path, Cause: err}
	}
	return nil
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Request(ctx, http.MethodGet, path, query, nil, out, nil)
}

// Post issues a POST request with a JSON body and decodes the response into
// out (skipped when out is nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPost, path, nil, body, out, nil)
}
