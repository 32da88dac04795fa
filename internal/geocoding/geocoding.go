// Package geocoding turns place names into cities and coordinates into
// display names.
package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/providers"
	"github.com/fernandolucchesi/weatherly/internal/providers/openmeteo"
	"github.com/fernandolucchesi/weatherly/internal/providers/openstreetmap"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// SearchProvider searches places by name
type SearchProvider interface {
	Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error)
}

// ReverseGeocodeProvider looks up the address for a coordinate
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// Service provides city search and reverse geocoding
type Service interface {
	// SearchCities returns cities matching query. Zero matches is an empty
	// slice, not an error. Callers enforce the minimum query length.
	SearchCities(ctx context.Context, query string) ([]types.City, error)
	// ReverseGeocode returns a display name for the coordinates, or "" when
	// none is known. Only rate limiting is reported as an error.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}

type geocodingService struct {
	searchProvider  SearchProvider
	reverseProvider ReverseGeocodeProvider
	searchLimit     int
	logger          *slog.Logger
}

// NewGeocodingService creates a geocoding service with custom providers
func NewGeocodingService(
	searchProvider SearchProvider,
	reverseProvider ReverseGeocodeProvider,
	searchLimit int,
	logger *slog.Logger,
) Service {
	if searchLimit <= 0 {
		searchLimit = 10
	}
	return &geocodingService{
		searchProvider:  searchProvider,
		reverseProvider: reverseProvider,
		searchLimit:     searchLimit,
		logger:          logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) SearchCities(ctx context.Context, query string) ([]types.City, error) {
	resp, err := s.searchProvider.Search(ctx, query, s.searchLimit)
	if err != nil {
		if providers.IsStatus(err, http.StatusTooManyRequests) {
			return nil, apierror.RateLimited(err)
		}
		return nil, apierror.Provider(fmt.Errorf("failed to search cities: %w", err))
	}

	results, ok, err := resp.Matches()
	if err != nil {
		return nil, apierror.Provider(fmt.Errorf("invalid search results: %w", err))
	}
	if !ok {
		s.logger.Debug("no search results", "query", query)
		return []types.City{}, nil
	}

	cities := make([]types.City, 0, len(results))
	for _, r := range results {
		cities = append(cities, toCity(r))
	}

	return cities, nil
}

func (s *geocodingService) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	resp, err := s.reverseProvider.Reverse(ctx, latitude, longitude)
	if err != nil {
		if providers.IsStatus(err, http.StatusTooManyRequests) {
			return "", apierror.RateLimited(err)
		}
		// Best effort: a missing name is not worth failing the caller over
		s.logger.Warn("reverse geocoding failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return "", nil
	}

	return buildLabel(resp), nil
}

func toCity(r openmeteo.GeocodingResult) types.City {
	country := r.Country
	if country == "" {
		country = r.CountryCode
	}
	return types.City{
		ID:      types.CityID(r.Latitude, r.Longitude),
		Name:    r.Name,
		Country: country,
		Admin1:  r.Admin1,
		Admin2:  r.Admin2,
		Lat:     r.Latitude,
		Lon:     r.Longitude,
	}
}

// buildLabel prefers "place, region, country" from structured address data
// and falls back to the first and last segments of display_name.
func buildLabel(resp *openstreetmap.LookupAPIResponse) string {
	if resp == nil {
		return ""
	}

	if a := resp.Address; a != nil {
		parts := make([]string, 0, 3)
		if place := firstNonEmpty(a.City, a.Town, a.Village, a.Municipality); place != "" {
			parts = append(parts, place)
		}
		if region := firstNonEmpty(a.State, a.Region); region != "" {
			parts = append(parts, region)
		}
		if a.Country != "" {
			parts = append(parts, a.Country)
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}

	if resp.DisplayName == "" {
		return ""
	}

	segments := strings.Split(resp.DisplayName, ",")
	first := strings.TrimSpace(segments[0])
	last := strings.TrimSpace(segments[len(segments)-1])
	if len(segments) == 1 || first == last {
		return first
	}
	return first + ", " + last
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
