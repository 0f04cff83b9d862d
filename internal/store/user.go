package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Upsert inserts the user, or refreshes name and picture when a user
	// with the same email already exists. This is the login path:
	// every successful OAuth exchange upserts. The returned user carries the
	// stored ID and rating, which may differ from the input on conflict.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// SetRating stores the user's rating, replacing any previous value.
	// Returns ErrUserNotFound if the user does not exist.
	SetRating(ctx context.Context, id uuid.UUID, rating int) error
}
