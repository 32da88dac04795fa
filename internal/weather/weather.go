package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/providers"
	"github.com/fernandolucchesi/weatherly/internal/providers/openmeteo"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

const (
	DefaultForecastDays = 7
	DefaultHourlyLimit  = 48
)

type ForecastProvider interface {
	// GetForecast fetches current, hourly and daily data for the coordinates
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// TimezoneLookup resolves an IANA timezone from coordinates. Used only when
// the provider omits one.
type TimezoneLookup interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type Service interface {
	// GetCurrentWeather returns the normalized forecast. It fails with
	// NOT_FOUND when the provider has no data for the location and with
	// PROVIDER_ERROR for any other failure.
	GetCurrentWeather(ctx context.Context, latitude, longitude float64, locationName string) (*types.Weather, error)
}

type Options struct {
	ForecastDays int
	HourlyLimit  int
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneLookup   TimezoneLookup
	opts             Options
	logger           *slog.Logger
}

// NewWeatherServiceWithProvider creates the service. timezoneLookup may be
// nil, in which case a missing provider timezone becomes UTC.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneLookup TimezoneLookup,
	opts Options,
	logger *slog.Logger,
) Service {
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = DefaultForecastDays
	}
	if opts.HourlyLimit <= 0 {
		opts.HourlyLimit = DefaultHourlyLimit
	}
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneLookup:   timezoneLookup,
		opts:             opts,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, latitude, longitude float64, locationName string) (*types.Weather, error) {
	apiResponse, err := s.forecastProvider.GetForecast(ctx, latitude, longitude, s.opts.ForecastDays)
	if err != nil {
		if providers.IsStatus(err, http.StatusNotFound) {
			return nil, apierror.NotFound(err)
		}
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, apierror.Provider(fmt.Errorf("failed to get forecast: %w", err))
	}

	if apiResponse.CurrentWeather == nil {
		s.logger.Warn("forecast has no current conditions",
			"latitude", latitude,
			"longitude", longitude,
		)
		return nil, apierror.NotFound(fmt.Errorf("no current_weather block for (%.4f, %.4f)", latitude, longitude))
	}

	weather := mapForecastAPIResponseToWeather(apiResponse, locationName, s.opts.HourlyLimit)

	if apiResponse.Timezone == "" {
		weather.Timezone = s.resolveTimezone(latitude, longitude)
	}

	return weather, nil
}

func (s *weatherService) resolveTimezone(latitude, longitude float64) string {
	if s.timezoneLookup == nil {
		return types.DefaultTimezone
	}

	tz, err := s.timezoneLookup.GetTimezone(latitude, longitude)
	if err != nil {
		s.logger.Debug("could not determine timezone, using default",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.DefaultTimezone
	}

	s.logger.Debug("determined timezone for location",
		"latitude", latitude,
		"longitude", longitude,
		"timezone", tz,
	)
	return tz
}
