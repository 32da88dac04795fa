package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Providers ProvidersConfig
	Geocoding GeocodingConfig
	Forecast  ForecastConfig
	IPLookup  IPLookupConfig
	Outfit    OutfitConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ProvidersConfig holds upstream endpoints. Overridable so tests and
// self-hosted mirrors can point elsewhere.
type ProvidersConfig struct {
	GeocodingURL string
	ForecastURL  string
	NominatimURL string
	NominatimRPS float64
	IPAPIURL     string
	UserAgent    string
}

// GeocodingConfig holds city search settings
type GeocodingConfig struct {
	SearchLimit int // Max results requested from the provider
}

// ForecastConfig holds forecast request settings
type ForecastConfig struct {
	Days                   int
	HourlyLimit            int
	ResolveMissingTimezone bool
}

// IPLookupConfig holds IP geolocation settings
type IPLookupConfig struct {
	Timeout time.Duration
}

// OutfitConfig holds generative advice settings. An empty APIKey disables
// the generative path and every request uses the rule-based advice.
type OutfitConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weatherly")

	setDefaults(v)

	// Read from environment variables, e.g. WEATHERLY_OUTFIT_APIKEY
	v.SetEnvPrefix("WEATHERLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults only contain plain values, decoding cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("providers.geocodingurl", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("providers.forecasturl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.nominatimurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("providers.nominatimrps", 1.0)
	v.SetDefault("providers.ipapiurl", "http://ip-api.com/json")
	v.SetDefault("providers.useragent", "weatherly/1.0 (+https://github.com/fernandolucchesi/weatherly)")

	v.SetDefault("geocoding.searchlimit", 10)

	v.SetDefault("forecast.days", 7)
	v.SetDefault("forecast.hourlylimit", 48)
	v.SetDefault("forecast.resolvemissingtimezone", true)

	v.SetDefault("iplookup.timeout", 5*time.Second)

	v.SetDefault("outfit.apikey", "")
	v.SetDefault("outfit.model", "gpt-4o-mini")
	v.SetDefault("outfit.baseurl", "")
	v.SetDefault("outfit.timeout", 8*time.Second)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
