package outfit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Mock generator for testing

type mockGenerator struct {
	text      string
	err       error
	block     bool
	gotPrompt string
}

func (m *mockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	m.gotPrompt = prompt
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.text, m.err
}

var chillyOslo = Input{
	LocationName: ptr("Oslo, Norway"),
	TemperatureC: ptr(3.0),
	WeatherCode:  ptr(61),
	IsDay:        ptr(false),
}

func TestAdvisor_Advise(t *testing.T) {
	fallback := Advice{
		Headline: Headline,
		Text:     "Heavy coat, scarf, gloves; Waterproof layer and umbrella; Evening: bring an extra layer",
	}

	tests := []struct {
		name      string
		generator *mockGenerator
		want      Advice
	}{
		{
			name:      "generated advice",
			generator: &mockGenerator{text: "Bundle up in a cozy wool coat, you'll look dashing in the drizzle."},
			want:      Advice{Headline: Headline, Text: "Bundle up in a cozy wool coat, you'll look dashing in the drizzle."},
		},
		{
			name:      "provider failure falls back to rules",
			generator: &mockGenerator{err: errors.New("status code: 500")},
			want:      fallback,
		},
		{
			name:      "timeout falls back to rules",
			generator: &mockGenerator{block: true},
			want:      fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisor := NewAdvisor(tt.generator, 20*time.Millisecond, discardLogger)

			got := advisor.Advise(context.Background(), chillyOslo)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Advise() mismatch (-want +got):\n%s", diff)
			}
			if !strings.Contains(tt.generator.gotPrompt, "Loc: Oslo, Norway") {
				t.Errorf("prompt = %q, want location line", tt.generator.gotPrompt)
			}
		})
	}
}

func TestAdvisor_Advise_WithoutGenerator(t *testing.T) {
	advisor := NewAdvisor(nil, 0, discardLogger)

	got := advisor.Advise(context.Background(), chillyOslo)

	want := Recommend(Normalize(chillyOslo))
	want.Note = ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Advise() mismatch (-want +got):\n%s", diff)
	}
}
