package mermaid

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue describes one structural defect found in diagram source.
type Issue struct {
	Line    int // 1-based line number
	Message string
}

// String renders the issue as a line-numbered error description.
func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// headlessArrow matches an arrow (optionally edge-labeled) with nothing
// after it.
var headlessArrow = regexp.MustCompile(`-->\s*(\|[^|]*\|\s*)?$`)

// Validate scans diagram source line by line for the two structural defects
// the renderer cannot recover from: an arrow with no destination, and an
// unclosed node-label bracket. It is independent of Sanitize and performs
// no repair; an empty result means no defects were found, not that the
// diagram is valid Mermaid.
func Validate(source string) []Issue {
	var issues []Issue

	for n, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			continue
		}

		if headlessArrow.MatchString(trimmed) {
			issues = append(issues, Issue{Line: n + 1, Message: "arrow with no destination"})
		}

		if strings.Count(trimmed, "[") != strings.Count(trimmed, "]") {
			issues = append(issues, Issue{Line: n + 1, Message: "unclosed node label bracket"})
		}
	}

	return issues
}
