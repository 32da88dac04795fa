package openstreetmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fernandolucchesi/weatherly/internal/providers"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestClient_Reverse(t *testing.T) {
	var gotUA string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"display_name":"Oslo, Norway","address":{"city":"Oslo","country":"Norway","country_code":"no"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "weatherly-test", 0, discardLogger)
	resp, err := client.Reverse(context.Background(), 59.9139, 10.7522)
	if err != nil {
		t.Fatalf("Reverse() unexpected error = %v", err)
	}

	if gotUA != "weatherly-test" {
		t.Errorf("User-Agent = %q, want weatherly-test", gotUA)
	}
	for k, v := range map[string]string{"lat": "59.9139", "lon": "10.7522", "format": "jsonv2", "addressdetails": "1"} {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s = %v, want %q", k, got, v)
		}
	}
	if resp.Address == nil || resp.Address.City != "Oslo" {
		t.Errorf("Address = %+v", resp.Address)
	}
}

func TestClient_Reverse_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0, discardLogger)
	_, err := client.Reverse(context.Background(), 1, 2)

	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("Reverse() error = %v, want 429 StatusError", err)
	}
}

func TestClient_Reverse_RateLimitHonoursContext(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// One request every ten seconds: the second call cannot get a token
	client := NewClient(server.URL, "", 0.1, discardLogger)
	if _, err := client.Reverse(context.Background(), 1, 2); err != nil {
		t.Fatalf("first Reverse() unexpected error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Reverse(ctx, 1, 2); err == nil {
		t.Error("second Reverse() expected rate limit error but got none")
	}
	if calls != 1 {
		t.Errorf("provider calls = %d, want 1", calls)
	}
}
