package timezone

import (
	"io"
	"log/slog"
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{"Oslo, Norway", 59.9139, 10.7522, "Europe/Oslo"},
		{"London, UK", 51.5074, -0.1278, "Europe/London"},
		{"New York City", 40.7128, -74.0060, "America/New_York"},
		{"Tokyo, Japan", 35.6762, 139.6503, "Asia/Tokyo"},
		{"Sydney, Australia", -33.8688, 151.2093, "Australia/Sydney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Fatalf("GetTimezone() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_ReturnsSameInstance(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	first, err := NewService(logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	second, err := NewService(logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if first != second {
		t.Error("NewService() should return the shared finder")
	}
}
