package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// SavedQuizStore persists the per-user last-quiz snapshot. There is exactly
// one snapshot per user; Put replaces it wholesale, so there are no
// read-modify-write races to guard against.
type SavedQuizStore interface {
	// Get returns the user's saved quiz.
	// Returns ErrSavedQuizNotFound when no snapshot exists.
	Get(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error)

	// Put stores the snapshot, overwriting any previous one.
	Put(ctx context.Context, userID uuid.UUID, quiz *domain.SavedQuiz) error

	// Delete removes the user's snapshot. Deleting a snapshot that does not
	// exist is not an error: the end state is the same.
	Delete(ctx context.Context, userID uuid.UUID) error
}
