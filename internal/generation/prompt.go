package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

// The prompt template is part of the output contract: it names the JSON
// array shape and the per-category formatting rules the normalizer and
// renderer rely on, so it ships embedded rather than as deployable config.
//
//go:embed prompt.tmpl
var promptTemplateText string

// promptTemplate is parsed once at startup; a malformed template is a
// programmer error, not a runtime condition.
//
// text/template rather than html/template: content is interpolated into the
// instruction string unescaped by contract.
var promptTemplate = template.Must(template.New("quiz").Parse(promptTemplateText))

// promptData is the data passed to the prompt template.
type promptData struct {
	Count      int
	Difficulty string
	Category   string
	TypeTag    string
	Content    string
}

// BuildPrompt assembles the single instruction string for a quiz request.
// It is pure string construction: no network calls, no side effects.
// Returns domain.ErrNoContent when the request carries no content, before
// anything else happens.
func (g *QuizGenerator) BuildPrompt(req *domain.QuizRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	data := promptData{
		Count:      req.Count,
		Difficulty: req.Difficulty,
		Category:   req.Category,
		TypeTag:    domain.TypeTag(req.Category),
		Content:    req.TruncatedContent(),
	}

	var promptBuffer bytes.Buffer
	if err := promptTemplate.Execute(&promptBuffer, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}
