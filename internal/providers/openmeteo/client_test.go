package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fernandolucchesi/weatherly/internal/providers"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGeocodingClient_Search_Request(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"name":     q.Get("name"),
			"count":    q.Get("count"),
			"language": q.Get("language"),
			"format":   q.Get("format"),
		}
		_, _ = w.Write([]byte(`{"results":[{"id":1,"name":"London","latitude":51.5,"longitude":-0.1,"country":"United Kingdom"}]}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, discardLogger)
	resp, err := client.Search(context.Background(), "London", 10)
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}

	want := map[string]string{"name": "London", "count": "10", "language": "en", "format": "json"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	results, ok, err := resp.Matches()
	if err != nil || !ok {
		t.Fatalf("Matches() ok=%v err=%v", ok, err)
	}
	if len(results) != 1 || results[0].Name != "London" {
		t.Errorf("Matches() = %+v", results)
	}
}

func TestGeocodingAPIResponse_Matches(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantOK  bool
		wantLen int
		wantErr bool
	}{
		{name: "missing", raw: ``, wantOK: false},
		{name: "null", raw: `null`, wantOK: false},
		{name: "object", raw: `{"a":1}`, wantOK: false},
		{name: "string", raw: `"nope"`, wantOK: false},
		{name: "empty array", raw: `[]`, wantOK: true, wantLen: 0},
		{name: "one result", raw: `[{"name":"Oslo","latitude":59.9,"longitude":10.7}]`, wantOK: true, wantLen: 1},
		{name: "malformed entry", raw: `[{"latitude":"north"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &GeocodingAPIResponse{Results: []byte(tt.raw)}
			results, ok, err := r.Matches()
			if tt.wantErr {
				if err == nil {
					t.Error("Matches() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Matches() unexpected error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Matches() ok = %v, want %v", ok, tt.wantOK)
			}
			if len(results) != tt.wantLen {
				t.Errorf("Matches() len = %d, want %d", len(results), tt.wantLen)
			}
		})
	}
}

func TestForecastClient_GetForecast_Request(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"timezone":"Europe/Oslo","current_weather":{"temperature":3.4,"weathercode":3,"time":"2025-01-15T10:00","is_day":1},"hourly":{"time":["2025-01-15T10:00"],"temperature_2m":[null],"weathercode":[3],"is_day":[1]}}`))
	}))
	defer server.Close()

	client := NewForecastClient(server.URL, discardLogger)
	resp, err := client.GetForecast(context.Background(), 59.9139, 10.7522, 7)
	if err != nil {
		t.Fatalf("GetForecast() unexpected error = %v", err)
	}

	checks := map[string]string{
		"latitude":         "59.9139",
		"longitude":        "10.7522",
		"current_weather":  "true",
		"temperature_unit": "celsius",
		"timezone":         "auto",
		"forecast_days":    "7",
		"hourly":           "temperature_2m,weathercode,is_day,precipitation,relativehumidity_2m",
		"daily":            "weathercode,temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max",
	}
	for k, v := range checks {
		if got := query[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s = %v, want %q", k, got, v)
		}
	}

	if resp.CurrentWeather == nil || resp.CurrentWeather.Temperature != 3.4 {
		t.Errorf("CurrentWeather = %+v", resp.CurrentWeather)
	}
	if resp.Hourly.Temperature2M[0] != nil {
		t.Errorf("null temperature should decode to nil, got %v", *resp.Hourly.Temperature2M[0])
	}
	if resp.Daily != nil {
		t.Error("missing daily block should decode to nil")
	}
}

func TestForecastClient_GetForecast_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewForecastClient(server.URL, discardLogger)
	_, err := client.GetForecast(context.Background(), 1, 2, 7)

	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetForecast() error = %v, want *providers.StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
}
