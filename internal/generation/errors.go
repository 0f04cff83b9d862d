package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when quiz generation fails for any
	// general reason, including network failures reaching the upstream.
	ErrGenerationFailed = errors.New("failed to generate quiz from content")

	// ErrParseFailed is returned when the fence-stripped completion text is
	// not valid JSON.
	ErrParseFailed = errors.New("failed to parse AI response")

	// ErrInvalidResponse is returned when the parsed completion is not a
	// question array (an object without an error key, a scalar, etc.).
	ErrInvalidResponse = errors.New("invalid question format received")

	// ErrEmptyCompletion is returned when the upstream response carries no
	// completion text.
	ErrEmptyCompletion = errors.New("empty response from AI model")

	// ErrContentBlocked is returned when the upstream blocks the content
	// through safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrUpstream is the sentinel wrapped by UpstreamError; use errors.Is
	// against this to detect any upstream-reported failure.
	ErrUpstream = errors.New("upstream API error")
)

// UpstreamError carries an error message reported by the completion endpoint
// itself (an `error` field in the decoded body, or a non-2xx status). The
// message is surfaced to the user unchanged, prefixed with "API Error:".
type UpstreamError struct {
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Message)
}

// Unwrap makes errors.Is(err, ErrUpstream) hold for UpstreamError values.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
