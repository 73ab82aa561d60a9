// Package agentclient provides the HTTP client used to fetch agent cards and
// probe agent liveness.
package agentclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// WellKnownPath is where every agent serves its card.
const WellKnownPath = "/.well-known/agent-card.json"

// Client fetches agent cards over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CardURL returns the well-known card URL for an agent endpoint.
func CardURL(endpoint string) string {
	return strings.TrimSuffix(endpoint, "/") + WellKnownPath
}

// FetchCard retrieves the raw agent card document from the endpoint's
// well-known path. Any transport failure or non-2xx status is an error.
func (c *Client) FetchCard(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, CardURL(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("agent returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent card: %w", err)
	}
	return body, nil
}

// CheckAlive probes the endpoint's well-known path and reports whether the
// agent answered with a success status.
func (c *Client) CheckAlive(ctx context.Context, endpoint string) bool {
	_, err := c.FetchCard(ctx, endpoint)
	return err == nil
}
