package mocks

import (
	"context"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	GenerateQuizFn func(ctx context.Context, req *domain.QuizRequest) ([]domain.QuizQuestion, error)

	// Default values used when GenerateQuizFn isn't defined
	Questions []domain.QuizQuestion
	Err       error
}

// GenerateQuiz implements the generation.Generator interface
func (m *MockGenerator) GenerateQuiz(
	ctx context.Context,
	req *domain.QuizRequest,
) ([]domain.QuizQuestion, error) {
	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, req)
	}
	return m.Questions, m.Err
}

// MockCompletionClient implements generation.CompletionClient for testing
type MockCompletionClient struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	// Default values used when CompleteFn isn't defined
	Completion string
	Err        error

	// Prompts records every prompt passed to Complete
	Prompts []string
}

// Complete implements the generation.CompletionClient interface
func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}
	return m.Completion, m.Err
}
