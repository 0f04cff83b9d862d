package generation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"github.com/quizcrawler/quizcrawler-api/internal/mocks"
)

func validRequest() *domain.QuizRequest {
	return &domain.QuizRequest{
		Content:    "Channels coordinate goroutines by passing values.",
		Difficulty: "medium",
		Category:   domain.CategoryGeneral,
		Count:      2,
	}
}

func TestGenerateQuizSuccess(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{
		Completion: "```json\n" + `[{"type":"general","question":"What do channels do?","answer":"Pass values"}]` + "\n```",
	}
	gen := newTestGenerator(t, client)

	questions, err := gen.GenerateQuiz(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What do channels do?", questions[0].Question)
	require.Len(t, client.Prompts, 1)
	assert.Contains(t, client.Prompts[0], "Channels coordinate goroutines")
}

func TestGenerateQuizFencedEmptyArray(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{Completion: "```json\n[]\n```"}
	gen := newTestGenerator(t, client)

	questions, err := gen.GenerateQuiz(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestGenerateQuizClientError(t *testing.T) {
	t.Parallel()

	wantErr := &generation.UpstreamError{Message: "model overloaded"}
	client := &mocks.MockCompletionClient{Err: wantErr}
	gen := newTestGenerator(t, client)

	_, err := gen.GenerateQuiz(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrUpstream)
	assert.Equal(t, "API Error: model overloaded", err.Error())
}

func TestGenerateQuizUnparseableCompletion(t *testing.T) {
	t.Parallel()

	client := &mocks.MockCompletionClient{Completion: "I'd be happy to help!"}
	gen := newTestGenerator(t, client)

	_, err := gen.GenerateQuiz(context.Background(), validRequest())
	assert.ErrorIs(t, err, generation.ErrParseFailed)
}

func TestNewQuizGeneratorNilChecks(t *testing.T) {
	t.Parallel()

	_, err := generation.NewQuizGenerator(nil, &mocks.MockCompletionClient{})
	assert.Error(t, err)

	_, err = generation.NewQuizGenerator(nil, nil)
	assert.Error(t, err)
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := &generation.UpstreamError{Message: "quota"}
	assert.True(t, errors.Is(err, generation.ErrUpstream))
	assert.Equal(t, "API Error: quota", err.Error())
}
