// Package fetch retrieves raw page bytes from a clubs & societies site.
// Transport errors are reported as-is and never interpreted; timeout policy
// lives here, not in the parsers.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request. The platform serves a degraded page
// to clients it does not recognize as a browser.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; rv:130.0) Gecko/20100101 Firefox/130.0"

// Fetcher retrieves the raw bytes of a page given its host-relative path
// ("site.tld/society/foo"). Implementations own connection pooling and
// timeouts.
type Fetcher interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

// TransportError reports a non-success response from the source site.
type TransportError struct {
	URL        string
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Client is the production Fetcher. It wraps a pooled resty client and must
// be constructed explicitly and passed down; there is no package-level
// session.
type Client struct {
	rc     *resty.Client
	scheme string
}

// NewClient builds a Client with the given request timeout. An empty
// userAgent falls back to UserAgent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = UserAgent
	}
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
	return &Client{rc: rc, scheme: "https"}
}

// Get fetches https://{path} and returns the response body. Non-2xx
// responses become a TransportError.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	url := c.scheme + "://" + path
	resp, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}
