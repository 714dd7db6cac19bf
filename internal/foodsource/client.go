package foodsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"nutriscan/internal/config"
)

// maxResponseBody bounds how much of a food database response is read.
const maxResponseBody = 8 << 20

// offClient issues GET requests against the Open Food Facts HTTP API.
type offClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// newOFFClient applies cfg to client. A nil client gets one with the configured timeout.
func newOFFClient(cfg config.OpenFoodFactsConfig, client *http.Client) offClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return offClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      client,
	}
}

// get returns the status code and (bounded) body of one request. Only transport and read failures are errors.
func (c offClient) get(ctx context.Context, path string, q url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("call food database: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read food database response: %w", err)
	}
	return resp.StatusCode, body, nil
}
