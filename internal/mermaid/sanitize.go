// Package mermaid provides best-effort repair and structural validation of
// Mermaid diagram source emitted by the language model. The model output is
// unreliable free text, not a trusted grammar: the sanitizer is a heuristic
// token-level patch layer, not a parser, and it is expected to fail on
// valid-but-unanticipated diagram syntax.
package mermaid

import (
	"regexp"
	"strings"
)

var (
	// bracketLabel matches one square-bracket node label, e.g. A[Start].
	bracketLabel = regexp.MustCompile(`\[([^\[\]]*)\]`)

	// braceLabel matches one curly-brace decision label, e.g. C{Done?}.
	braceLabel = regexp.MustCompile(`\{([^{}]*)\}`)

	// brokenArrow matches arrow spellings with stray spaces, e.g. "-- >"
	// or "- ->".
	brokenArrow = regexp.MustCompile(`-\s*-\s*>`)

	// arrowSpacing collapses whitespace around a canonical arrow.
	arrowSpacing = regexp.MustCompile(`[ \t]*-->[ \t]*`)

	// danglingDashes matches a trailing run of dashes with no arrow head,
	// e.g. "A --" left behind by a truncated edge.
	danglingDashes = regexp.MustCompile(`[ \t]+-+[ \t]*$`)

	// specialEscaper rewrites characters that break unquoted Mermaid labels
	// into HTML entities.
	specialEscaper = strings.NewReplacer(
		"(", "&#40;",
		")", "&#41;",
		"{", "&#123;",
		"}", "&#125;",
	)

	// parenEscaper is used inside brace labels, where the braces themselves
	// are the delimiters.
	parenEscaper = strings.NewReplacer(
		"(", "&#40;",
		")", "&#41;",
	)
)

// Sanitize applies the repair transformations in order: special-character
// escaping plus label quoting, arrow normalization, and dangling-edge
// trimming. It is idempotent: already-quoted labels and canonical arrows
// pass through unchanged, so sanitizing twice yields the first result.
func Sanitize(source string) string {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		// Quote bracketed node labels, escaping specials in the ones that
		// were not quoted yet. Labels the model already quoted are trusted:
		// specials are legal inside quotes.
		line = bracketLabel.ReplaceAllStringFunc(line, func(m string) string {
			content := m[1 : len(m)-1]
			if isQuoted(content) {
				return m
			}
			return `["` + specialEscaper.Replace(content) + `"]`
		})
		line = braceLabel.ReplaceAllStringFunc(line, func(m string) string {
			content := m[1 : len(m)-1]
			if isQuoted(content) {
				return m
			}
			return `{"` + parenEscaper.Replace(content) + `"}`
		})

		// Normalize arrow variants to the single canonical token.
		line = brokenArrow.ReplaceAllString(line, "-->")
		line = arrowSpacing.ReplaceAllString(line, " --> ")

		// A trailing dash run is a truncated edge; drop it rather than hand
		// the renderer a syntax error.
		line = danglingDashes.ReplaceAllString(line, "")

		// Lines that were nothing but dashes disappear entirely.
		if strings.Trim(line, " \t-") == "" && strings.Contains(line, "-") {
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func isQuoted(content string) bool {
	return len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`)
}
