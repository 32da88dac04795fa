package outfit

import (
	"context"
	"log/slog"
	"time"
)

const DefaultTimeout = 8 * time.Second

// Generator produces free text for a prompt
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Advisor asks the generator first and falls back to the rules. Advise
// never fails.
type Advisor struct {
	generator Generator
	timeout   time.Duration
	logger    *slog.Logger
}

// NewAdvisor creates an advisor. A nil generator means every request uses
// the rules.
func NewAdvisor(generator Generator, timeout time.Duration, logger *slog.Logger) *Advisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Advisor{
		generator: generator,
		timeout:   timeout,
		logger:    logger.With("component", "outfit-advisor"),
	}
}

func (a *Advisor) Advise(ctx context.Context, in Input) Advice {
	if a.generator != nil {
		text, err := a.generate(ctx, in)
		if err == nil {
			return Advice{Headline: Headline, Text: text}
		}
		a.logger.Warn("generative advice unavailable, using rules", "error", err)
	}

	advice := Recommend(Normalize(in))
	advice.Note = ""
	return advice
}

func (a *Advisor) generate(ctx context.Context, in Input) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return a.generator.Complete(ctx, BuildPrompt(in))
}
