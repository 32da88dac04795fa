package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the model answers with no text
var ErrEmptyCompletion = errors.New("completion contained no text")

type Client struct {
	api    *goopenai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates a chat completion client. baseURL may be empty to use
// the public OpenAI endpoint.
func NewClient(apiKey, baseURL, model string, logger *slog.Logger) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = goopenai.GPT4oMini
	}
	return &Client{
		api:    goopenai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger.With("component", "openai-client"),
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's text, trimmed.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("requesting completion", "model", c.model, "prompt_length", len(prompt))

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   120,
		Temperature: 0.9,
	})
	if err != nil {
		c.logger.Warn("completion request failed", "model", c.model, "error", err)
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
