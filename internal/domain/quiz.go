package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Common validation errors
var (
	ErrNoContent          = errors.New("no content provided")
	ErrInvalidCount       = errors.New("question count must be positive")
	ErrEmptyQuestion      = errors.New("question text cannot be empty")
	ErrNoOptions          = errors.New("multiple-choice question has no options")
	ErrAnswerNotInOptions = errors.New("answer does not match exactly one option")
)

// MaxContentLength is the cap applied to extracted page content before it is
// embedded in a prompt. Longer content is truncated, never rejected.
const MaxContentLength = 12000

// Difficulty levels accepted by the generator.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Category names as presented in the UI. The question type tag is the
// lowercased, dash-joined form of the category (see TypeTag).
const (
	CategoryGeneral    = "General"
	CategoryProgram    = "Programming"
	CategoryScenario   = "Scenario-Based"
	CategoryConceptual = "Conceptual"
	CategoryMermaid    = "Mermaid Diagram"
	CategoryInterview  = "Interview"
)

// QuizRequest carries one user-initiated generation request. It is ephemeral:
// created per user action and discarded once the response is displayed or saved.
type QuizRequest struct {
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Count      int    `json:"count"`
}

// Validate checks the request. Only the presence of content is a hard
// requirement; difficulty and category are free-form by contract and pass
// through to the prompt as given.
func (r *QuizRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return ErrNoContent
	}
	if r.Count <= 0 {
		return ErrInvalidCount
	}
	return nil
}

// TruncatedContent returns the request content capped at MaxContentLength
// bytes. The cut never splits a multi-byte rune.
func (r *QuizRequest) TruncatedContent() string {
	if len(r.Content) <= MaxContentLength {
		return r.Content
	}
	cut := MaxContentLength
	for cut > 0 && !utf8.RuneStart(r.Content[cut]) {
		cut--
	}
	return r.Content[:cut]
}

// TypeTag converts a UI category name into the type tag the model is asked
// to emit, e.g. "Mermaid Diagram" -> "mermaid-diagram".
func TypeTag(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "-")
}

// QuizQuestion is one generated quiz item. Options are present only for
// multiple-choice types; Diagram carries Mermaid source for diagram items.
type QuizQuestion struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
	Diagram  string   `json:"diagram,omitempty"`
}

// IsMultipleChoice reports whether the question carries clickable options.
func (q *QuizQuestion) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// HasDiagram reports whether the question carries Mermaid diagram source.
func (q *QuizQuestion) HasDiagram() bool {
	return strings.TrimSpace(q.Diagram) != ""
}

// Validate checks the structural invariant the renderer depends on: when
// options are present, the answer must equality-match exactly one of them
// after tag/whitespace normalization.
func (q *QuizQuestion) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return ErrEmptyQuestion
	}
	if q.Type == TypeTag(CategoryScenario) && len(q.Options) == 0 {
		return ErrNoOptions
	}
	if len(q.Options) > 0 {
		matches := 0
		want := NormalizeAnswerText(q.Answer)
		for _, opt := range q.Options {
			if NormalizeAnswerText(opt) == want {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("%w: %d options match", ErrAnswerNotInOptions, matches)
		}
	}
	return nil
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeAnswerText prepares option/answer text for grading comparison:
// HTML tags stripped, whitespace runs collapsed to one space, trimmed, and
// lowercased. The MCQ grading rule and the QuizQuestion invariant both use
// this normalization so they cannot disagree.
func NormalizeAnswerText(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// SavedQuiz is the per-user snapshot of the last generated quiz: the question
// list plus the rendered markup. It is overwritten wholesale on every
// successful generation or explicit save and cleared on user reset.
type SavedQuiz struct {
	Questions      []QuizQuestion `json:"questions"`
	RenderedMarkup string         `json:"rendered_markup"`
}
