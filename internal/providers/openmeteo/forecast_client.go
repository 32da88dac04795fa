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
	"strings"

	"github.com/fernandolucchesi/weatherly/internal/providers"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=59.91&longitude=10.75&current_weather=true&temperature_unit=celsius&timezone=auto&hourly=temperature_2m,weathercode,is_day,precipitation,relativehumidity_2m&daily=weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max&forecast_days=7
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var (
	hourlyVars = []string{
		"temperature_2m",
		"weathercode",
		"is_day",
		"precipitation",
		"relativehumidity_2m",
	}

	dailyVars = []string{
		"weathercode",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"precipitation_probability_max",
	}
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, logger *slog.Logger) *ForecastClient {
	return NewForecastClientWithHTTPClient(baseURL, &http.Client{}, logger)
}

func NewForecastClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches current conditions plus hourly and daily blocks for
// the given coordinates, with the provider resolving the local timezone.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "celsius")
	q.Set("timezone", "auto")
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch forecast",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("forecast API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, &providers.StatusError{Provider: "open-meteo forecast", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode forecast response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
