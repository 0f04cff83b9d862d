package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// MockSavedQuizStore implements store.SavedQuizStore for testing. When no
// Fn overrides are set it behaves as an in-memory store.
type MockSavedQuizStore struct {
	GetFn    func(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error)
	PutFn    func(ctx context.Context, userID uuid.UUID, quiz *domain.SavedQuiz) error
	DeleteFn func(ctx context.Context, userID uuid.UUID) error

	Err error

	mu      sync.Mutex
	quizzes map[uuid.UUID]*domain.SavedQuiz
}

// Get implements the store.SavedQuizStore interface
func (m *MockSavedQuizStore) Get(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	quiz, ok := m.quizzes[userID]
	if !ok {
		return nil, store.ErrSavedQuizNotFound
	}
	return quiz, nil
}

// Put implements the store.SavedQuizStore interface
func (m *MockSavedQuizStore) Put(ctx context.Context, userID uuid.UUID, quiz *domain.SavedQuiz) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, userID, quiz)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quizzes == nil {
		m.quizzes = make(map[uuid.UUID]*domain.SavedQuiz)
	}
	m.quizzes[userID] = quiz
	return nil
}

// Delete implements the store.SavedQuizStore interface
func (m *MockSavedQuizStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quizzes, userID)
	return nil
}
