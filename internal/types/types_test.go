package types

import (
	"math"
	"testing"
)

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{"Oslo", NewCoords(59.9139, 10.7522), true},
		{"poles and antimeridian", NewCoords(-90, 180), true},
		{"latitude too high", NewCoords(90.01, 0), false},
		{"longitude too low", NewCoords(0, -180.5), false},
		{"NaN latitude", NewCoords(math.NaN(), 10), false},
		{"sentinel is in range", NewCoords(0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoords_IsSentinel(t *testing.T) {
	if !NewCoords(0, 0).IsSentinel() {
		t.Error("(0,0) should be the sentinel")
	}
	if NewCoords(0, 0.0001).IsSentinel() {
		t.Error("(0,0.0001) should not be the sentinel")
	}
}

func TestCoords_Label(t *testing.T) {
	if got := NewCoords(51.5074, -0.1278).Label(); got != "51.51, -0.13" {
		t.Errorf("Label() = %q, want %q", got, "51.51, -0.13")
	}
}

func TestCityID(t *testing.T) {
	if got := CityID(51.5, -0.1); got != "51.5,-0.1" {
		t.Errorf("CityID() = %q, want %q", got, "51.5,-0.1")
	}
}

func TestIsSnowy(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{0, false},
		{61, false},
		{71, true},
		{77, true},
		{80, false},
		{86, true},
		{95, false},
		{99, true},
	}

	for _, tt := range tests {
		if got := IsSnowy(tt.code); got != tt.want {
			t.Errorf("IsSnowy(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestIsWet(t *testing.T) {
	light := 0.2
	heavy := 0.5

	tests := []struct {
		name          string
		code          int
		precipitation *float64
		want          bool
	}{
		{"clear and unknown precipitation", 0, nil, false},
		{"clear with trace precipitation", 1, &light, false},
		{"clear with measurable precipitation", 1, &heavy, true},
		{"drizzle", 51, nil, true},
		{"freezing rain", 67, nil, true},
		{"snow", 73, nil, false},
		{"showers", 81, nil, true},
		{"thunderstorm", 95, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWet(tt.code, tt.precipitation); got != tt.want {
				t.Errorf("IsWet(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestGetWeatherDescription(t *testing.T) {
	if got := GetWeatherDescription(45); got != "Fog" {
		t.Errorf("GetWeatherDescription(45) = %q, want Fog", got)
	}
	if got := GetWeatherDescription(42); got != "Unknown" {
		t.Errorf("GetWeatherDescription(42) = %q, want Unknown", got)
	}
}
