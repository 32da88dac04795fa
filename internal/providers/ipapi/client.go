package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/fernandolucchesi/weatherly/internal/providers"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json/8.8.8.8?fields=status,message,lat,lon
const (
	defaultBaseURL = "http://ip-api.com/json"
	defaultTimeout = 5 * time.Second
)

// LookupAPIResponse mirrors the subset of fields we request. Some mirrors
// answer with latitude/longitude instead of lat/lon.
type LookupAPIResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient creates an ip-api client. Every lookup is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTPClient(baseURL, timeout, &http.Client{}, logger)
}

func NewClientWithHTTPClient(baseURL string, timeout time.Duration, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
		logger:     logger.With("component", "ipapi-client"),
	}
}

// Lookup resolves the approximate location of ip
func (c *Client) Lookup(ctx context.Context, ip string) (*LookupAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(ip)

	q := u.Query()
	q.Set("fields", "status,message,lat,lon")
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.Debug("looking up IP location", "ip", ip)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("failed to reach ip-api", "ip", ip, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("ip-api returned error",
			"status_code", resp.StatusCode,
			"ip", ip,
			"response_body", string(body),
		)
		return nil, &providers.StatusError{Provider: "ip-api", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Warn("failed to decode ip-api response", "ip", ip, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
