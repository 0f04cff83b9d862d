package mermaid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/mermaid"
)

func TestValidateCleanDiagram(t *testing.T) {
	t.Parallel()

	issues := mermaid.Validate("graph TD\n" + `A["Start"] --> B["End"]`)
	assert.Empty(t, issues)
}

func TestValidateHeadlessArrow(t *testing.T) {
	t.Parallel()

	issues := mermaid.Validate("graph TD\nA -->")
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, "line 2: arrow with no destination", issues[0].String())
}

func TestValidateEdgeLabeledHeadlessArrow(t *testing.T) {
	t.Parallel()

	issues := mermaid.Validate("graph TD\nA --> |yes|")
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "no destination")
}

func TestValidateUnclosedBracket(t *testing.T) {
	t.Parallel()

	issues := mermaid.Validate(`A["Start] --> B`)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, "unclosed node label bracket", issues[0].Message)
}

func TestValidateMultipleIssues(t *testing.T) {
	t.Parallel()

	src := "graph TD\nA[Broken --> B\nC -->"
	issues := mermaid.Validate(src)
	require.Len(t, issues, 2)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, 3, issues[1].Line)
}

func TestValidateIgnoresBlankLines(t *testing.T) {
	t.Parallel()

	issues := mermaid.Validate("graph TD\n\n   \nA --> B")
	assert.Empty(t, issues)
}
