// Package relay wraps the public CORS-relay endpoint used to reach the
// third-party result pages. The relay fetches the target URL server-side and
// streams its raw body back, which keeps the scrape targets from seeing our
// origin and sidesteps their cross-origin policies.
package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the allorigins raw passthrough endpoint.
const DefaultBaseURL = "https://api.allorigins.win/raw?url="

// Client fetches arbitrary URLs through the relay.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a relay client. An empty baseURL selects the default
// relay; timeout bounds every fetch so one dead source cannot stall the
// fallback chain.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the raw body of target through the relay. Non-2xx relay
// responses are errors; the caller treats any error as "try next source".
func (c *Client) Fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.QueryEscape(target), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("relay returned status %d for %s", resp.StatusCode, target)
	}

	return io.ReadAll(resp.Body)
}
