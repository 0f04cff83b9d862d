package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// RatingService records and reports the one-time satisfaction rating each
// user can submit.
type RatingService interface {
	// SubmitRating stores the rating for the user, overwriting any prior
	// value.
	SubmitRating(ctx context.Context, userID uuid.UUID, rating int) error

	// HasRating reports whether the user has submitted a rating.
	HasRating(ctx context.Context, userID uuid.UUID) (bool, error)
}

type ratingService struct {
	userStore store.UserStore
}

// NewRatingService creates a RatingService backed by the given user store.
func NewRatingService(userStore store.UserStore) RatingService {
	return &ratingService{userStore: userStore}
}

// SubmitRating implements RatingService.SubmitRating.
func (s *ratingService) SubmitRating(ctx context.Context, userID uuid.UUID, rating int) error {
	if err := s.userStore.SetRating(ctx, userID, rating); err != nil {
		return fmt.Errorf("failed to store rating: %w", err)
	}
	return nil
}

// HasRating implements RatingService.HasRating.
func (s *ratingService) HasRating(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}
	return user.Rating != nil, nil
}
