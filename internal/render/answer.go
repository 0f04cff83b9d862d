package render

import (
	"html/template"
	"regexp"
	"strings"
)

// The prompt contract asks the model to fence code with ~~~lang rather than
// backticks so quiz JSON never nests markdown fences inside itself.
var codeFencePattern = regexp.MustCompile(`(?s)~~~([a-zA-Z0-9+-]*)[ \t]*\n(.*?)~~~`)

// answerHTML converts answer text into markup: plain segments are escaped,
// ~~~lang fenced segments become <pre><code class="language-X"> blocks for
// client-side syntax highlighting.
func answerHTML(answer string) template.HTML {
	if strings.TrimSpace(answer) == "" {
		return ""
	}

	var b strings.Builder
	rest := answer
	for {
		loc := codeFencePattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(textHTML(rest))
			break
		}

		b.WriteString(textHTML(rest[:loc[0]]))

		lang := rest[loc[2]:loc[3]]
		if lang == "" {
			lang = "plaintext"
		}
		code := strings.TrimRight(rest[loc[4]:loc[5]], "\n")
		b.WriteString(`<pre><code class="language-` + template.HTMLEscapeString(lang) + `">`)
		b.WriteString(template.HTMLEscapeString(code))
		b.WriteString(`</code></pre>`)

		rest = rest[loc[1]:]
	}

	return template.HTML(b.String())
}

// textHTML escapes a plain text segment, preserving line breaks.
func textHTML(text string) string {
	escaped := template.HTMLEscapeString(text)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
