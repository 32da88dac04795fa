package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/providers"
	"github.com/fernandolucchesi/weatherly/internal/providers/openmeteo"
	"github.com/fernandolucchesi/weatherly/internal/providers/openstreetmap"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Mock providers for testing

type mockSearchProvider struct {
	raw       string
	err       error
	gotName   string
	gotCount  int
	callCount int
}

func (m *mockSearchProvider) Search(ctx context.Context, name string, count int) (*openmeteo.GeocodingAPIResponse, error) {
	m.gotName, m.gotCount = name, count
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	var resp openmeteo.GeocodingAPIResponse
	if err := json.Unmarshal([]byte(m.raw), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type mockReverseProvider struct {
	response *openstreetmap.LookupAPIResponse
	err      error
}

func (m *mockReverseProvider) Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	return m.response, m.err
}

const londonResponse = `{"results":[{"id":1,"name":"London","latitude":51.5,"longitude":-0.1,"country":"United Kingdom","admin1":"England","admin2":"London"}]}`

func TestGeocodingService_SearchCities(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		err      error
		want     []types.City
		wantCode apierror.Code
	}{
		{
			name: "maps provider results into cities",
			raw:  londonResponse,
			want: []types.City{{
				ID:      "51.5,-0.1",
				Name:    "London",
				Country: "United Kingdom",
				Admin1:  "England",
				Admin2:  "London",
				Lat:     51.5,
				Lon:     -0.1,
			}},
		},
		{
			name: "falls back to country code",
			raw:  `{"results":[{"name":"Lyon","latitude":45.75,"longitude":4.85,"country_code":"FR"}]}`,
			want: []types.City{{ID: "45.75,4.85", Name: "Lyon", Country: "FR", Lat: 45.75, Lon: 4.85}},
		},
		{
			name: "missing results is zero matches",
			raw:  `{}`,
			want: []types.City{},
		},
		{
			name: "non-array results is zero matches",
			raw:  `{"results":"none"}`,
			want: []types.City{},
		},
		{
			name:     "rate limited",
			err:      &providers.StatusError{StatusCode: http.StatusTooManyRequests},
			wantCode: apierror.CodeRateLimited,
		},
		{
			name:     "server error",
			err:      &providers.StatusError{StatusCode: http.StatusInternalServerError},
			wantCode: apierror.CodeProviderError,
		},
		{
			name:     "network error",
			err:      errors.New("connection refused"),
			wantCode: apierror.CodeProviderError,
		},
		{
			name:     "malformed results entry",
			raw:      `{"results":[{"latitude":"north"}]}`,
			wantCode: apierror.CodeProviderError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockSearchProvider{raw: tt.raw, err: tt.err}
			service := NewGeocodingService(provider, &mockReverseProvider{}, 10, discardLogger)

			got, err := service.SearchCities(context.Background(), "London")

			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("SearchCities() expected %s error but got none", tt.wantCode)
				}
				if code := apierror.CodeOf(err); code != tt.wantCode {
					t.Errorf("SearchCities() code = %s, want %s", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("SearchCities() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SearchCities() mismatch (-want +got):\n%s", diff)
			}
			if provider.gotCount != 10 {
				t.Errorf("requested count = %d, want 10", provider.gotCount)
			}
		})
	}
}

func TestGeocodingService_SearchCities_Idempotent(t *testing.T) {
	provider := &mockSearchProvider{raw: `{"results":[
		{"id":1,"name":"London","latitude":51.5,"longitude":-0.1,"country":"United Kingdom"},
		{"id":1,"name":"London","latitude":42.98,"longitude":-81.24,"country":"Canada"}
	]}`}
	service := NewGeocodingService(provider, &mockReverseProvider{}, 10, discardLogger)

	first, err := service.SearchCities(context.Background(), "London")
	if err != nil {
		t.Fatalf("SearchCities() unexpected error = %v", err)
	}
	second, err := service.SearchCities(context.Background(), "London")
	if err != nil {
		t.Fatalf("SearchCities() unexpected error = %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated searches differ (-first +second):\n%s", diff)
	}
	if first[0].ID == first[1].ID {
		t.Errorf("duplicate provider ids must still yield distinct city ids, got %q twice", first[0].ID)
	}
}

func TestGeocodingService_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name     string
		response *openstreetmap.LookupAPIResponse
		err      error
		want     string
		wantCode apierror.Code
	}{
		{
			name: "city, state and country",
			response: &openstreetmap.LookupAPIResponse{
				Address: &openstreetmap.Address{City: "Aspen", State: "Colorado", Country: "United States"},
			},
			want: "Aspen, Colorado, United States",
		},
		{
			name: "village without region",
			response: &openstreetmap.LookupAPIResponse{
				Address: &openstreetmap.Address{Village: "Hallstatt", Country: "Austria"},
			},
			want: "Hallstatt, Austria",
		},
		{
			name: "town preferred over municipality",
			response: &openstreetmap.LookupAPIResponse{
				Address: &openstreetmap.Address{Town: "Tromsø", Municipality: "Tromsø kommune", Region: "Northern Norway"},
			},
			want: "Tromsø, Northern Norway",
		},
		{
			name: "display name fallback",
			response: &openstreetmap.LookupAPIResponse{
				DisplayName: "Karl Johans gate, Sentrum, Oslo, Norway",
			},
			want: "Karl Johans gate, Norway",
		},
		{
			name: "empty address falls back to display name",
			response: &openstreetmap.LookupAPIResponse{
				Address:     &openstreetmap.Address{},
				DisplayName: "Atlantic Ocean",
			},
			want: "Atlantic Ocean",
		},
		{
			name:     "nothing known",
			response: &openstreetmap.LookupAPIResponse{Error: "Unable to geocode"},
			want:     "",
		},
		{
			name:     "rate limited",
			err:      &providers.StatusError{StatusCode: http.StatusTooManyRequests},
			wantCode: apierror.CodeRateLimited,
		},
		{
			name: "server error is swallowed",
			err:  &providers.StatusError{StatusCode: http.StatusServiceUnavailable},
			want: "",
		},
		{
			name: "decode error is swallowed",
			err:  errors.New("failed to decode response"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewGeocodingService(&mockSearchProvider{}, &mockReverseProvider{response: tt.response, err: tt.err}, 10, discardLogger)

			got, err := service.ReverseGeocode(context.Background(), 59.91, 10.75)

			if tt.wantCode != "" {
				if !errors.Is(err, apierror.ErrRateLimited) {
					t.Errorf("ReverseGeocode() error = %v, want RATE_LIMITED", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReverseGeocode() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReverseGeocode() = %q, want %q", got, tt.want)
			}
		})
	}
}
