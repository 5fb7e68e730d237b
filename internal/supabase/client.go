package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultProbeTimeout = 10 * time.Second
	healthEndpoint      = "/auth/v1/health"
	maxErrorBodyBytes   = 512
)

// Client talks to a Supabase project's public REST surface using the anon key.
type Client struct {
	config     EnvironmentConfig
	httpClient *http.Client
}

// NewClient creates a client for the given project. A nil httpClient gets
// a default one with a bounded timeout.
func NewClient(cfg EnvironmentConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultProbeTimeout}
	}
	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// Ping checks that the project answers its auth health endpoint with the
// configured anon key.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.config.Validate(); err != nil {
		return err
	}

	resp, err := c.makeRequest(ctx, http.MethodGet, healthEndpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("supabase health check failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string) (*http.Response, error) {
	url := strings.TrimRight(c.config.URL, "/") + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.config.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.config.AnonKey)

	log.WithFields(log.Fields{
		"component": "supabase",
		"method":    method,
		"endpoint":  endpoint,
	}).Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}

	log.WithFields(log.Fields{
		"component": "supabase",
		"endpoint":  endpoint,
		"status":    resp.StatusCode,
	}).Debug("received response")

	return resp, nil
}
