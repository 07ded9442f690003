package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultProbeTimeout bounds each individual credential probe.
const DefaultProbeTimeout = 5 * time.Second

// ProbeClient issues the single read-only GET each adapter uses to test
// credentials. One client is shared across all adapters; every request
// carries its own timeout.
type ProbeClient struct {
	client  *http.Client
	timeout time.Duration
}

// NewProbeClient creates a probe client with the given per-request timeout.
func NewProbeClient(timeout time.Duration) *ProbeClient {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &ProbeClient{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// ProbeResponse is the slice of the HTTP response a probe cares about.
type ProbeResponse struct {
	StatusCode int
	Body       []byte
}

// Get sends an authenticated GET to the endpoint and returns the response.
// The caller's context is honored in addition to the client timeout, so a
// cancelled detection run aborts the in-flight probe.
func (c *ProbeClient) Get(ctx context.Context, endpoint, header, value string) (*ProbeResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create probe request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PayDetect/1.0")
	if header != "" {
		req.Header.Set(header, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read probe response: %w", err)
	}

	return &ProbeResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
