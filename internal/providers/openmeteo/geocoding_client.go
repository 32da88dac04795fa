package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fernandolucchesi/weatherly/internal/providers"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=London&count=10&language=en&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(baseURL string, logger *slog.Logger) *GeocodingClient {
	return NewGeocodingClientWithHTTPClient(baseURL, &http.Client{}, logger)
}

func NewGeocodingClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = baseGeocodingURL
	}
	return &GeocodingClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up places by name, asking for at most count results
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching places", "name", name, "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to reach geocoding API", "name", name, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoding API returned error",
			"status_code", resp.StatusCode,
			"name", name,
			"response_body", string(body),
		)
		return nil, &providers.StatusError{Provider: "open-meteo geocoding", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp GeocodingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode geocoding response", "name", name, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
