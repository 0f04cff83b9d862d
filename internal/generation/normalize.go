package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// fencePattern matches one markdown code fence pair with an optional
// language tag, capturing the wrapped text.
var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \\t]*\\n?(.*?)\\n?[ \\t]*```")

// StripFence removes the first fenced-block pair from the completion text,
// if present, and returns the trimmed remainder. Only the first pair is
// stripped; any later fences belong to the payload.
func StripFence(raw string) string {
	loc := fencePattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw)
	}
	// Replace the whole fence match with its captured interior.
	inner := raw[loc[2]:loc[3]]
	return strings.TrimSpace(raw[:loc[0]] + inner + raw[loc[1]:])
}

// Normalize converts raw completion text into a question slice:
// fence stripping, JSON parsing, and shape validation. For the Mermaid
// Diagram category the result is filtered to entries carrying a diagram.
//
// No schema repair is attempted: structurally valid but semantically
// malformed entries pass through and fail later at render time. That is the
// documented behavior of the pipeline, not an oversight.
func Normalize(raw string, category string) ([]domain.QuizQuestion, error) {
	cleaned := StripFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	switch v := parsed.(type) {
	case map[string]any:
		// An error object from the upstream is surfaced verbatim and ends
		// processing; any other object is the wrong shape.
		if msg, ok := v["error"].(string); ok {
			return nil, &UpstreamError{Message: msg}
		}
		return nil, ErrInvalidResponse
	case []any:
		// Fall through to the typed decode below.
	default:
		return nil, ErrInvalidResponse
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if domain.TypeTag(category) == domain.TypeTag(domain.CategoryMermaid) {
		filtered := make([]domain.QuizQuestion, 0, len(questions))
		for _, q := range questions {
			if q.HasDiagram() {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	return questions, nil
}
