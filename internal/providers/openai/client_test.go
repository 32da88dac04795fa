package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s, want /v1/chat/completions", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func TestClient_Complete(t *testing.T) {
	server := completionServer(t, http.StatusOK, "  Wear a scarf, you look great in it.  ")
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "", discardLogger)
	got, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete() unexpected error = %v", err)
	}
	if got != "Wear a scarf, you look great in it." {
		t.Errorf("Complete() = %q", got)
	}
}

func TestClient_Complete_Empty(t *testing.T) {
	server := completionServer(t, http.StatusOK, "   ")
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "", discardLogger)
	if _, err := client.Complete(context.Background(), "prompt"); !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("Complete() error = %v, want ErrEmptyCompletion", err)
	}
}

func TestClient_Complete_ProviderError(t *testing.T) {
	server := completionServer(t, http.StatusInternalServerError, "")
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "", discardLogger)
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Error("Complete() expected error but got none")
	}
}
