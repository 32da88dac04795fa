// Package client talks to the weatherly HTTP API and decodes its envelopes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/location"
	"github.com/fernandolucchesi/weatherly/internal/outfit"
	"github.com/fernandolucchesi/weatherly/internal/providers"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

const defaultBaseURL = "http://localhost:8080"

type Client struct {
	httpClient   *http.Client
	baseURL      *url.URL
	forwardedFor string
	logger       *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithForwardedFor sends ip as X-Forwarded-For so /geo can locate a client
// that is not the direct peer.
func WithForwardedFor(ip string) Option {
	return func(c *Client) {
		c.forwardedFor = ip
	}
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    u,
		logger:     logger.With("component", "weatherly-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type envelope[T any] struct {
	Data  T          `json:"data"`
	Error *errorBody `json:"error"`
}

type errorBody struct {
	Code    apierror.Code `json:"code"`
	Message string        `json:"message"`
}

type reverseGeocodeData struct {
	LocationName *string `json:"locationName"`
}

type outfitRequest struct {
	Weather outfit.Input `json:"weather"`
}

func (c *Client) SearchCities(ctx context.Context, query string) ([]types.City, error) {
	q := url.Values{}
	q.Set("query", query)

	var env envelope[[]types.City]
	if err := c.do(ctx, http.MethodGet, "/cities", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Geo asks for an approximate location. explicit may be nil to let the
// server fall back to the client IP.
func (c *Client) Geo(ctx context.Context, explicit *types.Coords) (*location.ApproxLocation, error) {
	q := url.Values{}
	if explicit != nil {
		setCoords(q, explicit.Latitude, explicit.Longitude)
	}

	var env envelope[location.ApproxLocation]
	if err := c.do(ctx, http.MethodGet, "/geo", q, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ReverseGeocode returns "" when the server knows no name for the point
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	q := url.Values{}
	setCoords(q, latitude, longitude)

	var env envelope[reverseGeocodeData]
	if err := c.do(ctx, http.MethodGet, "/reverse-geocode", q, nil, &env); err != nil {
		return "", err
	}
	if env.Data.LocationName == nil {
		return "", nil
	}
	return *env.Data.LocationName, nil
}

func (c *Client) Weather(ctx context.Context, latitude, longitude float64, locationName string) (*types.Weather, error) {
	q := url.Values{}
	setCoords(q, latitude, longitude)
	if locationName != "" {
		q.Set("locationName", locationName)
	}

	var env envelope[types.Weather]
	if err := c.do(ctx, http.MethodGet, "/weather", q, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) Outfit(ctx context.Context, in outfit.Input) (*outfit.Advice, error) {
	body, err := json.Marshal(outfitRequest{Weather: in})
	if err != nil {
		return nil, fmt.Errorf("failed to encode outfit request: %w", err)
	}

	var env envelope[outfit.Advice]
	if err := c.do(ctx, http.MethodPost, "/outfit", nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte, out any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = q.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", c.forwardedFor)
	}

	c.logger.Debug("calling weatherly API", "method", method, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decodeError(path, resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns an error envelope into an *apierror.Error. Bodies that
// are not envelopes become PROVIDER_ERROR wrapping the status.
func decodeError(path string, statusCode int, raw []byte) error {
	statusErr := &providers.StatusError{Provider: "weatherly" + path, StatusCode: statusCode, Body: string(raw)}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil || env.Error == nil || env.Error.Code == "" {
		return apierror.Provider(statusErr)
	}
	return apierror.New(env.Error.Code, env.Error.Message, statusErr)
}

func setCoords(q url.Values, latitude, longitude float64) {
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
}
