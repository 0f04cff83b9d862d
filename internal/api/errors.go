package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/quizcrawler/quizcrawler-api/internal/extract"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
	"github.com/quizcrawler/quizcrawler-api/internal/service/auth"
	"github.com/quizcrawler/quizcrawler-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrOAuthExchangeFailed):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, service.ErrNoSavedQuiz):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, extract.ErrNoReadableContent):
		return http.StatusBadRequest

	// Upstream model failures
	case errors.Is(err, service.ErrRequestTimedOut):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrUpstream),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	case errors.Is(err, generation.ErrParseFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrEmptyCompletion):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		return "Failed to get user info from Google"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrNoSavedQuiz):
		return "No saved quiz"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, extract.ErrNoReadableContent):
		return "No readable content found on the page"

	// Upstream model failures. Upstream error messages are part of the
	// client contract (the popup renders them verbatim), so pass those
	// through; everything else stays generic.
	case errors.Is(err, service.ErrRequestTimedOut):
		return "Request timed out. Please try again."

	case errors.Is(err, generation.ErrUpstream):
		var upstream *generation.UpstreamError
		if errors.As(err, &upstream) {
			return upstream.Error()
		}
		return "API Error"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Content was blocked by the AI provider"

	case errors.Is(err, generation.ErrEmptyCompletion):
		return "Empty response from AI model"

	case errors.Is(err, generation.ErrParseFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Failed to parse AI response"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'GenerateQuizRequest.Content' Error:Field
		// validation for 'Content' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
