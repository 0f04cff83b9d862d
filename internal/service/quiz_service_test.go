package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/mocks"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
)

func sampleQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{Type: "general", Question: "What is a channel?", Answer: "A typed conduit"},
	}
}

func sampleRequest() *domain.QuizRequest {
	return &domain.QuizRequest{
		Content:    "Channels are typed conduits for goroutine communication.",
		Difficulty: "easy",
		Category:   domain.CategoryGeneral,
		Count:      1,
	}
}

func TestGenerateQuizPersistsSnapshot(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{Questions: sampleQuestions()}
	quizStore := &mocks.MockSavedQuizStore{}
	svc := service.NewQuizService(generator, quizStore, 25*time.Second)

	userID := uuid.New()
	saved, err := svc.GenerateQuiz(context.Background(), userID, sampleRequest())
	require.NoError(t, err)
	require.Len(t, saved.Questions, 1)
	assert.Contains(t, saved.RenderedMarkup, "What is a channel?")

	stored, err := quizStore.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, saved.Questions, stored.Questions)
	assert.Equal(t, saved.RenderedMarkup, stored.RenderedMarkup)
}

func TestGenerateQuizStoreFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{Questions: sampleQuestions()}
	quizStore := &mocks.MockSavedQuizStore{
		PutFn: func(ctx context.Context, userID uuid.UUID, quiz *domain.SavedQuiz) error {
			return assert.AnError
		},
	}
	svc := service.NewQuizService(generator, quizStore, 25*time.Second)

	saved, err := svc.GenerateQuiz(context.Background(), uuid.New(), sampleRequest())
	require.NoError(t, err, "a failed snapshot write must not fail the generation")
	assert.Len(t, saved.Questions, 1)
}

func TestGenerateQuizTimeout(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{
		GenerateQuizFn: func(ctx context.Context, req *domain.QuizRequest) ([]domain.QuizQuestion, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	svc := service.NewQuizService(generator, &mocks.MockSavedQuizStore{}, 20*time.Millisecond)

	_, err := svc.GenerateQuiz(context.Background(), uuid.New(), sampleRequest())
	assert.ErrorIs(t, err, service.ErrRequestTimedOut)
}

func TestGenerateQuizGeneratorError(t *testing.T) {
	t.Parallel()

	generator := &mocks.MockGenerator{Err: assert.AnError}
	svc := service.NewQuizService(generator, &mocks.MockSavedQuizStore{}, time.Second)

	_, err := svc.GenerateQuiz(context.Background(), uuid.New(), sampleRequest())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSaveAndLastQuizRoundTrip(t *testing.T) {
	t.Parallel()

	svc := service.NewQuizService(&mocks.MockGenerator{}, &mocks.MockSavedQuizStore{}, time.Second)
	userID := uuid.New()

	saved, err := svc.SaveQuiz(context.Background(), userID, sampleQuestions())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.RenderedMarkup)

	got, err := svc.LastQuiz(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, saved.Questions, got.Questions)
}

func TestLastQuizMissing(t *testing.T) {
	t.Parallel()

	svc := service.NewQuizService(&mocks.MockGenerator{}, &mocks.MockSavedQuizStore{}, time.Second)

	_, err := svc.LastQuiz(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNoSavedQuiz)
}

func TestClearQuiz(t *testing.T) {
	t.Parallel()

	svc := service.NewQuizService(&mocks.MockGenerator{}, &mocks.MockSavedQuizStore{}, time.Second)
	userID := uuid.New()

	_, err := svc.SaveQuiz(context.Background(), userID, sampleQuestions())
	require.NoError(t, err)

	require.NoError(t, svc.ClearQuiz(context.Background(), userID))
	_, err = svc.LastQuiz(context.Background(), userID)
	assert.ErrorIs(t, err, service.ErrNoSavedQuiz)

	// Clearing again is a no-op, not an error.
	assert.NoError(t, svc.ClearQuiz(context.Background(), userID))
}
