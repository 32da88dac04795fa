package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/config"
	"github.com/fernandolucchesi/weatherly/internal/geocoding"
	"github.com/fernandolucchesi/weatherly/internal/iplocation"
	"github.com/fernandolucchesi/weatherly/internal/location"
	"github.com/fernandolucchesi/weatherly/internal/outfit"
	"github.com/fernandolucchesi/weatherly/internal/providers/ipapi"
	"github.com/fernandolucchesi/weatherly/internal/providers/openai"
	"github.com/fernandolucchesi/weatherly/internal/providers/openmeteo"
	"github.com/fernandolucchesi/weatherly/internal/providers/openstreetmap"
	"github.com/fernandolucchesi/weatherly/internal/timezone"
	"github.com/fernandolucchesi/weatherly/internal/weather"

	_ "github.com/fernandolucchesi/weatherly/docs" // Ensure docs are imported
)

// OutfitAdvisor produces clothing advice and never fails
type OutfitAdvisor interface {
	Advise(ctx context.Context, in outfit.Input) outfit.Advice
}

// Services are the adapters behind the handlers
type Services struct {
	Geocoding geocoding.Service
	Weather   weather.Service
	Location  location.Service
	Outfit    OutfitAdvisor
}

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	cfg              *config.Config
	geocodingService geocoding.Service
	weatherService   weather.Service
	locationService  location.Service
	outfitAdvisor    OutfitAdvisor
}

// NewApp creates a new application wired to the real providers
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	services, err := newServices(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewAppWithServices(cfg, logger, services), nil
}

// NewAppWithServices creates an application with custom services
// This is useful for testing with mock services
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, services Services) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(requestLogger(logger), recoverer(logger))

	app := &App{
		router:           router,
		logger:           logger,
		cfg:              cfg,
		geocodingService: services.Geocoding,
		weatherService:   services.Weather,
		locationService:  services.Location,
		outfitAdvisor:    services.Outfit,
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

func newServices(cfg *config.Config, logger *slog.Logger) (Services, error) {
	providersCfg := cfg.Providers

	geocodingSvc := geocoding.NewGeocodingService(
		openmeteo.NewGeocodingClient(providersCfg.GeocodingURL, logger),
		openstreetmap.NewClient(providersCfg.NominatimURL, providersCfg.UserAgent, providersCfg.NominatimRPS, logger),
		cfg.Geocoding.SearchLimit,
		logger,
	)

	var tzLookup weather.TimezoneLookup
	if cfg.Forecast.ResolveMissingTimezone {
		tz, err := timezone.NewService(logger)
		if err != nil {
			return Services{}, fmt.Errorf("failed to create timezone service: %w", err)
		}
		tzLookup = tz
	}

	weatherSvc := weather.NewWeatherServiceWithProvider(
		openmeteo.NewForecastClient(providersCfg.ForecastURL, logger),
		tzLookup,
		weather.Options{
			ForecastDays: cfg.Forecast.Days,
			HourlyLimit:  cfg.Forecast.HourlyLimit,
		},
		logger,
	)

	ipSvc := iplocation.NewIPLocationService(
		ipapi.NewClient(providersCfg.IPAPIURL, cfg.IPLookup.Timeout, logger),
		logger,
	)

	var generator outfit.Generator
	if cfg.Outfit.APIKey != "" {
		generator = openai.NewClient(cfg.Outfit.APIKey, cfg.Outfit.BaseURL, cfg.Outfit.Model, logger)
	} else {
		logger.Info("no OpenAI API key configured, outfit advice is rule-based only")
	}

	return Services{
		Geocoding: geocodingSvc,
		Weather:   weatherSvc,
		Location:  location.NewLocationService(ipSvc, logger),
		Outfit:    outfit.NewAdvisor(generator, cfg.Outfit.Timeout, logger),
	}, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
