package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/logger"
	"github.com/quizcrawler/quizcrawler-api/internal/render"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// QuizService runs the generate-render-persist pipeline and manages the
// per-user saved quiz snapshot.
type QuizService interface {
	// GenerateQuiz runs one generation attempt for the user. On success the
	// rendered snapshot is persisted (best effort) so the quiz survives a
	// popup close. Returns ErrRequestTimedOut when the completion window
	// elapses; all other errors come from the generation taxonomy.
	GenerateQuiz(ctx context.Context, userID uuid.UUID, req *domain.QuizRequest) (*domain.SavedQuiz, error)

	// SaveQuiz renders and persists an explicit snapshot of the given
	// questions, replacing any previous one.
	SaveQuiz(ctx context.Context, userID uuid.UUID, questions []domain.QuizQuestion) (*domain.SavedQuiz, error)

	// LastQuiz returns the user's saved snapshot, or ErrNoSavedQuiz.
	LastQuiz(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error)

	// ClearQuiz removes the user's saved snapshot.
	ClearQuiz(ctx context.Context, userID uuid.UUID) error
}

type quizService struct {
	generator generation.Generator
	quizStore store.SavedQuizStore

	// timeout is the client-side guard around one completion exchange.
	timeout time.Duration
}

// NewQuizService creates a QuizService with the given dependencies.
func NewQuizService(
	generator generation.Generator,
	quizStore store.SavedQuizStore,
	timeout time.Duration,
) QuizService {
	return &quizService{
		generator: generator,
		quizStore: quizStore,
		timeout:   timeout,
	}
}

// GenerateQuiz implements QuizService.GenerateQuiz.
func (s *quizService) GenerateQuiz(
	ctx context.Context,
	userID uuid.UUID,
	req *domain.QuizRequest,
) (*domain.SavedQuiz, error) {
	log := logger.FromContext(ctx)

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	questions, err := s.generator.GenerateQuiz(genCtx, req)
	if err != nil {
		if errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (%ds)", ErrRequestTimedOut, int(s.timeout.Seconds()))
		}
		return nil, err
	}

	saved := &domain.SavedQuiz{Questions: questions}

	// Persist the snapshot fire-and-forget: the user already has their
	// quiz, a failed write only costs the reload-after-close behavior.
	snapshot, renderErr := render.Snapshot(questions)
	if renderErr != nil {
		log.Warn("failed to render quiz snapshot", "error", renderErr, "user_id", userID)
		return saved, nil
	}
	saved.RenderedMarkup = snapshot
	if err := s.quizStore.Put(ctx, userID, saved); err != nil {
		log.Warn("failed to persist quiz snapshot", "error", err, "user_id", userID)
	}

	return saved, nil
}

// SaveQuiz implements QuizService.SaveQuiz.
func (s *quizService) SaveQuiz(
	ctx context.Context,
	userID uuid.UUID,
	questions []domain.QuizQuestion,
) (*domain.SavedQuiz, error) {
	snapshot, err := render.Snapshot(questions)
	if err != nil {
		return nil, err
	}

	saved := &domain.SavedQuiz{Questions: questions, RenderedMarkup: snapshot}
	if err := s.quizStore.Put(ctx, userID, saved); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	return saved, nil
}

// LastQuiz implements QuizService.LastQuiz.
func (s *quizService) LastQuiz(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error) {
	quiz, err := s.quizStore.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrSavedQuizNotFound) {
			return nil, ErrNoSavedQuiz
		}
		return nil, err
	}
	return quiz, nil
}

// ClearQuiz implements QuizService.ClearQuiz.
func (s *quizService) ClearQuiz(ctx context.Context, userID uuid.UUID) error {
	return s.quizStore.Delete(ctx, userID)
}
