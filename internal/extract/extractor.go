// Package extract performs best-effort plain-text extraction from HTML
// documents. It is a readability-style pass, not a full readability engine:
// page chrome is stripped, article containers are preferred, and the whole
// body is the fallback.
package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoReadableContent is returned when nothing text-like survives
// extraction. Generation is aborted on this error.
var ErrNoReadableContent = errors.New("no readable content found")

// chromeSelector matches the elements that never contribute readable prose.
const chromeSelector = "script, style, noscript, iframe, svg, nav, aside, header, footer, form"

// contentSelectors are tried in order; the first one with substantive text
// wins before falling back to the whole body.
var contentSelectors = []string{"article", "main", "[role=main]", "#content", ".content"}

var whitespaceRuns = regexp.MustCompile(`[ \t]+`)
var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// minContentLength filters out containers that matched a selector but hold
// only navigation stubs.
const minContentLength = 140

// FromHTML extracts readable plain text from an HTML document.
// Returns ErrNoReadableContent when the document yields nothing usable.
func FromHTML(htmlSource string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSource))
	if err != nil {
		return "", err
	}

	doc.Find(chromeSelector).Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if text := collapse(sel.Text()); len(text) >= minContentLength {
			return text, nil
		}
	}

	// Fallback: whole-body text, mirroring the document.body.innerText
	// fallback clients use when a local readability pass finds nothing.
	text := collapse(doc.Find("body").Text())
	if text == "" {
		text = collapse(doc.Text())
	}
	if text == "" {
		return "", ErrNoReadableContent
	}

	return text, nil
}

// collapse normalizes extracted text: per-line trimming, horizontal
// whitespace runs to one space, and at most one blank line between blocks.
func collapse(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRuns.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = blankLineRuns.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
