package api

import (
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// Common request/response structures

// GoogleLoginRequest defines the payload for the Google sign-in endpoint.
// Token is the OAuth access token obtained by the extension popup.
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// AuthResponse defines the successful response for the sign-in endpoint.
type AuthResponse struct {
	// Token is the session JWT used for API authorization
	Token string `json:"token"`

	// Email identifies the signed-in account for display in the popup
	Email string `json:"email,omitempty"`

	// Name is the account's display name
	Name string `json:"name,omitempty"`

	// Picture is the account's avatar URL
	Picture string `json:"picture,omitempty"`
}

// GenerateQuizRequest defines the payload for the quiz generation endpoint.
type GenerateQuizRequest struct {
	// Content is the extracted page text to build questions from
	Content string `json:"content" validate:"required"`

	// Difficulty passes through to the prompt as given; the UI offers
	// easy/medium/hard but the value is not constrained here
	Difficulty string `json:"difficulty" validate:"required"`

	// Category selects the question style
	Category string `json:"category" validate:"required"`

	// Count is the number of questions to generate
	Count int `json:"count" validate:"required,min=1,max=20"`
}

// ExtractRequest defines the payload for the content extraction endpoint.
type ExtractRequest struct {
	// HTML is the raw page markup to extract readable text from
	HTML string `json:"html" validate:"required"`

	// URL is the page the markup came from, used only for logging
	URL string `json:"url,omitempty" validate:"omitempty,url"`
}

// ExtractResponse carries the extracted readable text.
type ExtractResponse struct {
	Content string `json:"content"`
}

// SaveQuizRequest defines the payload for explicitly saving a quiz.
type SaveQuizRequest struct {
	Questions []domain.QuizQuestion `json:"questions" validate:"required,min=1"`
}

// SavedQuizResponse carries the user's saved quiz snapshot.
type SavedQuizResponse struct {
	Questions      []domain.QuizQuestion `json:"questions"`
	RenderedMarkup string                `json:"quizHTML"`
}

// SubmitRatingRequest defines the payload for the rating endpoint.
type SubmitRatingRequest struct {
	Rating int `json:"rating" validate:"required"`
}

// CheckRatingResponse reports whether the user has submitted a rating.
type CheckRatingResponse struct {
	HasRating bool `json:"hasRating"`
}

// MessageResponse is a generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
