package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/extract"
)

// filler produces prose long enough to pass the minimum-content filter.
func filler(sentence string) string {
	return strings.Repeat(sentence+" ", 20)
}

func TestFromHTMLPrefersArticle(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<nav>Home About Contact</nav>
		<article><p>` + filler("The article body holds the real content.") + `</p></article>
		<footer>Copyright</footer>
	</body></html>`

	text, err := extract.FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "The article body holds the real content.")
	assert.NotContains(t, text, "Home About Contact")
	assert.NotContains(t, text, "Copyright")
}

func TestFromHTMLStripsScriptsAndStyles(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<script>var secret = "nope";</script>
		<style>.x { color: red }</style>
		<main><p>` + filler("Visible text only.") + `</p></main>
	</body></html>`

	text, err := extract.FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Visible text only.")
	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "color: red")
}

func TestFromHTMLFallsBackToBody(t *testing.T) {
	t.Parallel()

	// No article/main containers at all; body text is still usable.
	html := `<html><body><div><p>Just a short paragraph with no landmarks.</p></div></body></html>`

	text, err := extract.FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Just a short paragraph with no landmarks.")
}

func TestFromHTMLSkipsThinContainers(t *testing.T) {
	t.Parallel()

	// The article is a navigation stub; the body fallback should win.
	html := `<html><body>
		<article>Menu</article>
		<div><p>` + filler("Body prose outside any landmark container.") + `</p></div>
	</body></html>`

	text, err := extract.FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Body prose outside any landmark container.")
}

func TestFromHTMLNoContent(t *testing.T) {
	t.Parallel()

	_, err := extract.FromHTML(`<html><body><script>only.code();</script></body></html>`)
	assert.ErrorIs(t, err, extract.ErrNoReadableContent)
}

func TestFromHTMLCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	html := `<html><body><main><p>` + filler("Spaced    out     words.") + `</p></main></body></html>`

	text, err := extract.FromHTML(html)
	require.NoError(t, err)
	assert.NotContains(t, text, "  ")
	assert.Contains(t, text, "Spaced out words.")
}
