// Package openai implements the generation.CompletionClient boundary
// against an OpenAI-compatible chat-completions HTTP endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/quizcrawler/quizcrawler-api/internal/config"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
)

// completionTemperature is fixed at the call site; it is not configurable
// per request.
const completionTemperature = 0.7

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the chat-completions response body we read.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Client performs single-attempt chat-completion exchanges. It makes no
// retries: an upstream or network failure is terminal for the current
// user action.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements generation.CompletionClient
var _ generation.CompletionClient = (*Client)(nil)

// NewClient creates a completion client from LLM configuration.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OpenAI API key not configured")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name not configured")
	}

	return &Client{
		baseURL: cfg.OpenAIBaseURL,
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.ModelName,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// Complete implements generation.CompletionClient. One request, one
// response; the caller's context deadline is the only abandonment mechanism.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: completionTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.DebugContext(ctx, "sending completion request",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", generation.ErrGenerationFailed, err)
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &generation.UpstreamError{Message: resp.Status}
		}
		return "", fmt.Errorf("%w: decoding response: %v", generation.ErrGenerationFailed, err)
	}

	// An error field in the body wins over the status code: its message is
	// what the user sees.
	if decoded.Error != nil {
		return "", &generation.UpstreamError{Message: decoded.Error.Message}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &generation.UpstreamError{Message: resp.Status}
	}

	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", generation.ErrEmptyCompletion
	}

	c.logger.DebugContext(ctx, "completion received",
		"status", resp.StatusCode,
		"completion_length", len(decoded.Choices[0].Message.Content))

	return decoded.Choices[0].Message.Content, nil
}
