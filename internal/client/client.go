// Package client is a small HTTP client for the siteforge API, used by the
// CLI and by integration tooling.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to a running siteforge server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given base URL. The token may be empty
// for anonymous access.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientFromEnv creates a client from SITEFORGE_SERVER_URL and
// SITEFORGE_API_TOKEN.
func NewClientFromEnv() (*Client, error) {
	baseURL := os.Getenv("SITEFORGE_SERVER_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewClient(baseURL, os.Getenv("SITEFORGE_API_TOKEN")), nil
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Ping checks the server is reachable.
func (c *Client) Ping() error {
	return c.get("/v0/ping", nil)
}

// VersionInfo is the server build metadata.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
}

// GetVersion fetches the server build metadata.
func (c *Client) GetVersion() (*VersionInfo, error) {
	out := &VersionInfo{}
	if err := c.get("/v0/version", out); err != nil {
		return nil, err
	}
	return out, nil
}

// HealthSummary is the aggregated platform health.
type HealthSummary struct {
	Status  string                     `json:"status"`
	Domains map[string]json.RawMessage `json:"domains"`
}

// GetHealth fetches the aggregated platform health.
func (c *Client) GetHealth() (*HealthSummary, error) {
	out := &HealthSummary{}
	if err := c.get("/v0/health", out); err != nil {
		return nil, err
	}
	return out, nil
}

// pingWithRetry pings the server with backoff until it responds or the
// attempts are exhausted.
func pingWithRetry(c *Client) error {
	const attempts = 10
	delay := 100 * time.Millisecond
	var err error
	for i := 0; i < attempts; i++ {
		if err = c.Ping(); err == nil {
			return nil
		}
		time.Sleep(delay)
		if delay < 2*time.Second {
			delay *= 2
		}
	}
	return fmt.Errorf("server did not become ready: %w", err)
}

// WaitReady blocks until the server answers pings or gives up.
func (c *Client) WaitReady() error {
	return pingWithRetry(c)
}
