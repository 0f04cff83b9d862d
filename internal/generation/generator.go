package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// CompletionClient defines the boundary to a hosted chat-completion
// endpoint: one synchronous request/response exchange returning the raw
// completion text. Implementations fix the model identifier and temperature
// at the call site and make a single best-effort attempt with no retry and no
// backoff, no rate limiting.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator defines the interface for generating quiz questions from
// extracted page content. It serves as the boundary between the application
// core and the external LLM service.
type Generator interface {
	// GenerateQuiz creates quiz questions for the given request.
	// Returns domain.ErrNoContent before any network call when the request
	// carries no content; see errors.go for the upstream failure taxonomy.
	GenerateQuiz(ctx context.Context, req *domain.QuizRequest) ([]domain.QuizQuestion, error)
}

// QuizGenerator implements Generator by composing the three pipeline stages:
// prompt assembly, one completion exchange, and response normalization.
type QuizGenerator struct {
	logger *slog.Logger
	client CompletionClient
}

// Ensure QuizGenerator implements Generator
var _ Generator = (*QuizGenerator)(nil)

// NewQuizGenerator creates a QuizGenerator with the provided dependencies.
func NewQuizGenerator(logger *slog.Logger, client CompletionClient) (*QuizGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, errors.New("completion client cannot be nil")
	}

	return &QuizGenerator{
		logger: logger,
		client: client,
	}, nil
}

// GenerateQuiz implements Generator.GenerateQuiz.
func (g *QuizGenerator) GenerateQuiz(
	ctx context.Context,
	req *domain.QuizRequest,
) ([]domain.QuizQuestion, error) {
	prompt, err := g.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "prompt assembled",
		"prompt_length", len(prompt),
		"category", req.Category,
		"difficulty", req.Difficulty,
		"count", req.Count)

	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logger.ErrorContext(ctx, "completion call failed", "error", err)
		return nil, err
	}

	questions, err := Normalize(raw, req.Category)
	if err != nil {
		g.logger.WarnContext(ctx, "completion text rejected by normalizer",
			"error", err,
			"raw_length", len(raw))
		return nil, err
	}

	g.logger.InfoContext(ctx, "quiz generated",
		"question_count", len(questions),
		"category", req.Category)

	return questions, nil
}
