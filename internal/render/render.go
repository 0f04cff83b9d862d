// Package render turns validated quiz questions into a typed view model and
// a serialized markup snapshot. The snapshot is what gets persisted with the
// saved quiz so the last quiz survives a popup close; the view model is the
// explicit replacement for the DOM string-templating the extension did.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/mermaid"
)

// OptionResetDelayMS is how long an option keeps its correct/incorrect
// highlight before it auto-clears. The snapshot exposes it as a data
// attribute so every client uses the same policy.
const OptionResetDelayMS = 2000

//go:embed quiz.tmpl
var quizTemplateText string

var quizTemplate = template.Must(template.New("quiz").Parse(quizTemplateText))

// Option is one clickable multiple-choice option.
type Option struct {
	Label   string // "A", "B", ...
	Text    string
	Correct bool
}

// Question is the view model for one rendered quiz item.
type Question struct {
	Number  int
	Type    string
	Prompt  string
	Options []Option

	// AnswerHTML is the answer text with ~~~lang fenced code converted to
	// highlighted <pre><code> blocks; empty when the question has no answer.
	AnswerHTML template.HTML

	// Diagram is the sanitized Mermaid source, empty for non-diagram items.
	Diagram string

	// DiagramError carries the line-numbered validation failures when the
	// sanitized source is still structurally broken. It is always surfaced
	// inline; the diagram control is never silently hidden.
	DiagramError string
}

// HasAnswer reports whether a reveal control should be rendered.
// Value receiver: the template calls this while ranging over questions.
func (q Question) HasAnswer() bool {
	return q.AnswerHTML != ""
}

// Quiz is the full view model handed to the template.
type Quiz struct {
	Questions        []Question
	OptionResetDelay int // milliseconds
}

// BuildViewModel maps validated questions to the view model. Malformed
// entries are not repaired here: a multiple-choice item whose answer matches
// no option simply renders with no correct option, matching the source
// behavior of failing at display time rather than silently fixing data.
func BuildViewModel(questions []domain.QuizQuestion) *Quiz {
	vm := &Quiz{
		Questions:        make([]Question, 0, len(questions)),
		OptionResetDelay: OptionResetDelayMS,
	}

	for i, q := range questions {
		item := Question{
			Number:     i + 1,
			Type:       q.Type,
			Prompt:     q.Question,
			AnswerHTML: answerHTML(q.Answer),
		}

		for idx, opt := range q.Options {
			item.Options = append(item.Options, Option{
				Label:   string(rune('A' + idx)),
				Text:    opt,
				Correct: Grade(&q, opt),
			})
		}

		if q.HasDiagram() {
			item.Diagram = mermaid.Sanitize(q.Diagram)
			if issues := mermaid.Validate(item.Diagram); len(issues) > 0 {
				descriptions := make([]string, len(issues))
				for j, issue := range issues {
					descriptions[j] = issue.String()
				}
				item.DiagramError = strings.Join(descriptions, "; ")
			}
		}

		vm.Questions = append(vm.Questions, item)
	}

	return vm
}

// Snapshot renders the questions to the markup snapshot persisted with a
// saved quiz. Zero questions render to an empty quiz container, not an error.
func Snapshot(questions []domain.QuizQuestion) (string, error) {
	var buf bytes.Buffer
	if err := quizTemplate.Execute(&buf, BuildViewModel(questions)); err != nil {
		return "", fmt.Errorf("failed to render quiz snapshot: %w", err)
	}
	return buf.String(), nil
}

// Grade reports whether the selected option text is the correct answer for
// the question, using case/whitespace-insensitive comparison after HTML-tag
// stripping, the same normalization the QuizQuestion invariant guarantees
// matches exactly one option.
func Grade(q *domain.QuizQuestion, selected string) bool {
	return domain.NormalizeAnswerText(selected) == domain.NormalizeAnswerText(q.Answer)
}
