package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Upsert implements store.UserStore.Upsert. Email is the conflict key:
// a returning login refreshes name and picture but keeps the stored ID,
// rating, and created_at.
func (s *PostgresUserStore) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO users (id, email, name, picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, picture = EXCLUDED.picture, updated_at = EXCLUDED.updated_at
		RETURNING id, email, name, picture, rating, created_at, updated_at`

	stored := &domain.User{}
	var rating sql.NullInt64
	err := s.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.Picture, user.CreatedAt, user.UpdatedAt,
	).Scan(&stored.ID, &stored.Email, &stored.Name, &stored.Picture, &rating, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	if rating.Valid {
		r := int(rating.Int64)
		stored.Rating = &r
	}

	return stored, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, name, picture, rating, created_at, updated_at
		FROM users
		WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, picture, rating, created_at, updated_at
		FROM users
		WHERE email = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// SetRating implements store.UserStore.SetRating
func (s *PostgresUserStore) SetRating(ctx context.Context, id uuid.UUID, rating int) error {
	query := `UPDATE users SET rating = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, rating, id)
	if err != nil {
		return fmt.Errorf("failed to set rating: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rating update: %w", err)
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

func (s *PostgresUserStore) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var rating sql.NullInt64
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &rating, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if rating.Valid {
		r := int(rating.Int64)
		user.Rating = &r
	}

	return user, nil
}
