package service

import "errors"

// Common service errors
var (
	// ErrRequestTimedOut is returned when the completion exchange exceeds
	// the configured window. The pending upstream call is abandoned, not
	// cancelled-and-retried; the result, if it ever arrives, is ignored.
	ErrRequestTimedOut = errors.New("request timed out")

	// ErrNoSavedQuiz indicates the user has no persisted quiz snapshot.
	ErrNoSavedQuiz = errors.New("no saved quiz")
)
