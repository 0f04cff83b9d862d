// Package gemini implements the generation.CompletionClient boundary on
// Google's Gemini API through the genai SDK. It is selected over the OpenAI
// client by the llm.provider configuration key.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quizcrawler/quizcrawler-api/internal/config"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"google.golang.org/genai"
)

// Client performs single-attempt completion exchanges against Gemini.
// Same semantics as the OpenAI client: no retry, no backoff; the caller's
// context deadline is the only abandonment mechanism.
type Client struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// Ensure Client implements generation.CompletionClient
var _ generation.CompletionClient = (*Client)(nil)

// NewClient creates a Gemini-backed completion client.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("Gemini API key not configured")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name not configured")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Complete implements generation.CompletionClient.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "sending completion request",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", generation.ErrEmptyCompletion
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", generation.ErrContentBlocked
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", generation.ErrEmptyCompletion
	}

	c.logger.DebugContext(ctx, "completion received",
		"completion_length", len(text))

	return text, nil
}
