package config

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if got := cfg.GetServerAddr(); got != ":8080" {
		t.Errorf("GetServerAddr() = %q, want :8080", got)
	}
	if cfg.Geocoding.SearchLimit != 10 {
		t.Errorf("Geocoding.SearchLimit = %d, want 10", cfg.Geocoding.SearchLimit)
	}
	if cfg.Forecast.Days != 7 || cfg.Forecast.HourlyLimit != 48 {
		t.Errorf("Forecast = %+v, want 7 days and 48 hours", cfg.Forecast)
	}
	if !cfg.Forecast.ResolveMissingTimezone {
		t.Error("Forecast.ResolveMissingTimezone should default to true")
	}
	if cfg.Outfit.APIKey != "" {
		t.Error("Outfit.APIKey should default to empty")
	}
	if cfg.Outfit.Timeout != 8*time.Second {
		t.Errorf("Outfit.Timeout = %v, want 8s", cfg.Outfit.Timeout)
	}
	if cfg.IPLookup.Timeout != 5*time.Second {
		t.Errorf("IPLookup.Timeout = %v, want 5s", cfg.IPLookup.Timeout)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WEATHERLY_SERVER_PORT", "9090")
	t.Setenv("WEATHERLY_OUTFIT_APIKEY", "sk-test")
	t.Setenv("WEATHERLY_OUTFIT_TIMEOUT", "3s")
	t.Setenv("WEATHERLY_FORECAST_HOURLYLIMIT", "24")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if got := cfg.GetServerAddr(); got != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", got)
	}
	if cfg.Outfit.APIKey != "sk-test" {
		t.Errorf("Outfit.APIKey = %q, want sk-test", cfg.Outfit.APIKey)
	}
	if cfg.Outfit.Timeout != 3*time.Second {
		t.Errorf("Outfit.Timeout = %v, want 3s", cfg.Outfit.Timeout)
	}
	if cfg.Forecast.HourlyLimit != 24 {
		t.Errorf("Forecast.HourlyLimit = %d, want 24", cfg.Forecast.HourlyLimit)
	}
	if cfg.Forecast.Days != 7 {
		t.Errorf("Forecast.Days = %d, want default 7", cfg.Forecast.Days)
	}
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()
			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("logger should be enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("logger should not be enabled below %v", tt.want)
			}
		})
	}
}
