package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	UpsertFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	SetRatingFn  func(ctx context.Context, id uuid.UUID, rating int) error

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

// Upsert implements the store.UserStore interface
func (m *MockUserStore) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, user)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User != nil {
		return m.User, nil
	}
	return user, nil
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}

// SetRating implements the store.UserStore interface
func (m *MockUserStore) SetRating(ctx context.Context, id uuid.UUID, rating int) error {
	if m.SetRatingFn != nil {
		return m.SetRatingFn(ctx, id, rating)
	}
	return m.Err
}
