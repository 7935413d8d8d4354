// Package transport implements the HTTP layer shared by every backend call:
// JSON encoding, cookie-carried credentials, CSRF double-submit header
// injection and the forced redirect to the login route on 401 responses.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/adaeze/nairamart/browser"
)

const (
	// CSRFCookieName is the cookie the backend issues for double-submit
	// CSRF protection. It is deliberately readable client-side so its value
	// can be echoed back as a header on mutating requests.
	CSRFCookieName = "csrftoken"
	// CSRFHeaderName carries the echoed CSRF token.
	CSRFHeaderName = "X-CSRFToken"
)

// maxResponseSize caps how much of a response body is read into memory.
const maxResponseSize = 4 << 20

const defaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. The provided client's
// jar is used as-is; pass one built around a persistent Jar to keep cookies
// across runs. A client without a jar disables cookies entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the structured logger. If not set, output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client is a JSON-over-HTTP client bound to a single backend base URL.
// Every request carries the jar's cookies; mutating requests additionally
// echo the CSRF cookie as a header when one is present.
type Client struct {
	base   *url.URL
	http   *http.Client
	nav    browser.Navigator
	logger *slog.Logger
}

// New creates a Client for the given base URL. The navigator receives the
// forced redirect to the login route whenever the backend answers 401.
func New(baseURL string, nav browser.Navigator, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	c := &Client{
		base:   base,
		nav:    nav,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		c.http = &http.Client{Jar: jar, Timeout: defaultTimeout}
	}
	return c, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into
// out. Either may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Do sends a single JSON request. out may be nil to discard the response
// body. Non-2xx responses return a *StatusError; a 401 additionally forces
// navigation to the login route before the error is returned, so callers may
// treat it as already handled.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutating(method) {
		// A missing cookie is not an error: the request goes out bare and
		// the server rejects it if it wanted the token.
		if token := c.csrfToken(); token != "" {
			req.Header.Set(CSRFHeaderName, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("unauthorized response, redirecting to login",
			slog.String("method", method), slog.String("path", path))
		c.nav.Navigate(browser.RouteLogin)
		return &StatusError{Status: resp.StatusCode, Payload: payload}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Status: resp.StatusCode, Payload: payload}
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// csrfToken reads the CSRF cookie for the client's base URL out of the jar.
func (c *Client) csrfToken() string {
	if c.http.Jar == nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

func mutating(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
