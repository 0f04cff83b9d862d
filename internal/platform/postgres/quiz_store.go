package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// PostgresSavedQuizStore implements store.SavedQuizStore on PostgreSQL.
// Questions are stored as JSONB; the rendered markup as text. One row per
// user, replaced wholesale on every Put.
type PostgresSavedQuizStore struct {
	db *sql.DB
}

// NewPostgresSavedQuizStore creates a new PostgreSQL implementation of the
// SavedQuizStore interface.
func NewPostgresSavedQuizStore(db *sql.DB) *PostgresSavedQuizStore {
	return &PostgresSavedQuizStore{
		db: db,
	}
}

// Ensure PostgresSavedQuizStore implements store.SavedQuizStore interface
var _ store.SavedQuizStore = (*PostgresSavedQuizStore)(nil)

// Get implements store.SavedQuizStore.Get
func (s *PostgresSavedQuizStore) Get(ctx context.Context, userID uuid.UUID) (*domain.SavedQuiz, error) {
	query := `
		SELECT questions, rendered_markup
		FROM saved_quizzes
		WHERE user_id = $1`

	var questionsJSON []byte
	quiz := &domain.SavedQuiz{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&questionsJSON, &quiz.RenderedMarkup)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSavedQuizNotFound
		}
		return nil, fmt.Errorf("failed to query saved quiz: %w", err)
	}

	if err := json.Unmarshal(questionsJSON, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode saved quiz questions: %w", err)
	}

	return quiz, nil
}

// Put implements store.SavedQuizStore.Put
func (s *PostgresSavedQuizStore) Put(ctx context.Context, userID uuid.UUID, quiz *domain.SavedQuiz) error {
	questionsJSON, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode saved quiz questions: %w", err)
	}

	query := `
		INSERT INTO saved_quizzes (user_id, questions, rendered_markup, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET questions = EXCLUDED.questions,
		    rendered_markup = EXCLUDED.rendered_markup,
		    updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, userID, questionsJSON, quiz.RenderedMarkup); err != nil {
		// The user row can disappear while a session token is still valid.
		if isForeignKeyViolation(err) {
			return store.ErrUserNotFound
		}
		return fmt.Errorf("failed to store saved quiz: %w", err)
	}

	return nil
}

// Delete implements store.SavedQuizStore.Delete
func (s *PostgresSavedQuizStore) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM saved_quizzes WHERE user_id = $1`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete saved quiz: %w", err)
	}

	return nil
}
