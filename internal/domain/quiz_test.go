package domain_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

func TestQuizRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     domain.QuizRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     domain.QuizRequest{Content: "some page text", Difficulty: "easy", Category: "General", Count: 5},
			wantErr: nil,
		},
		{
			name:    "empty content",
			req:     domain.QuizRequest{Content: "", Count: 5},
			wantErr: domain.ErrNoContent,
		},
		{
			name:    "whitespace-only content",
			req:     domain.QuizRequest{Content: "   \n\t ", Count: 5},
			wantErr: domain.ErrNoContent,
		},
		{
			name:    "zero count",
			req:     domain.QuizRequest{Content: "text", Count: 0},
			wantErr: domain.ErrInvalidCount,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestQuizRequestTruncatedContent(t *testing.T) {
	t.Parallel()

	t.Run("short content passes through", func(t *testing.T) {
		t.Parallel()
		req := domain.QuizRequest{Content: "short"}
		assert.Equal(t, "short", req.TruncatedContent())
	})

	t.Run("long content is capped", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("a", domain.MaxContentLength+500)
		req := domain.QuizRequest{Content: long}
		got := req.TruncatedContent()
		assert.Len(t, got, domain.MaxContentLength)
		assert.Equal(t, long[:domain.MaxContentLength], got)
	})

	t.Run("never splits a multi-byte rune", func(t *testing.T) {
		t.Parallel()

		// A 3-byte rune straddles the byte cap; the cut must back off to
		// the rune boundary instead of leaving a partial sequence.
		content := strings.Repeat("a", domain.MaxContentLength-1) + "世界"
		req := domain.QuizRequest{Content: content}
		got := req.TruncatedContent()

		assert.True(t, utf8.ValidString(got))
		assert.Len(t, got, domain.MaxContentLength-1)
		assert.Equal(t, strings.Repeat("a", domain.MaxContentLength-1), got)
	})

	t.Run("rune ending on the cap is kept", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", domain.MaxContentLength-3) + "世界"
		req := domain.QuizRequest{Content: content}
		got := req.TruncatedContent()

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("a", domain.MaxContentLength-3)+"世", got)
	})
}

func TestTypeTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "general", domain.TypeTag(domain.CategoryGeneral))
	assert.Equal(t, "mermaid-diagram", domain.TypeTag(domain.CategoryMermaid))
	assert.Equal(t, "scenario-based", domain.TypeTag(domain.CategoryScenario))
}

func TestQuizQuestionValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		q       domain.QuizQuestion
		wantErr error
	}{
		{
			name:    "open question without options",
			q:       domain.QuizQuestion{Type: "general", Question: "What is Go?", Answer: "A language"},
			wantErr: nil,
		},
		{
			name: "answer matches one option",
			q: domain.QuizQuestion{
				Type:     "scenario-based",
				Question: "Pick one",
				Options:  []string{"Alpha", "Beta", "Gamma", "Delta"},
				Answer:   "beta",
			},
			wantErr: nil,
		},
		{
			name: "answer matches after tag stripping",
			q: domain.QuizQuestion{
				Type:     "general",
				Question: "Pick one",
				Options:  []string{"<code>nil</code>", "zero"},
				Answer:   "nil",
			},
			wantErr: nil,
		},
		{
			name:    "empty question text",
			q:       domain.QuizQuestion{Type: "general", Question: "  ", Answer: "x"},
			wantErr: domain.ErrEmptyQuestion,
		},
		{
			name:    "scenario question without options",
			q:       domain.QuizQuestion{Type: "scenario-based", Question: "Pick one", Answer: "x"},
			wantErr: domain.ErrNoOptions,
		},
		{
			name: "answer matches no option",
			q: domain.QuizQuestion{
				Type:     "general",
				Question: "Pick one",
				Options:  []string{"Alpha", "Beta"},
				Answer:   "Gamma",
			},
			wantErr: domain.ErrAnswerNotInOptions,
		},
		{
			name: "answer matches two options",
			q: domain.QuizQuestion{
				Type:     "general",
				Question: "Pick one",
				Options:  []string{"Alpha", "alpha "},
				Answer:   "Alpha",
			},
			wantErr: domain.ErrAnswerNotInOptions,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.q.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNormalizeAnswerText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text lowercased", "Hello World", "hello world"},
		{"tags stripped", "<strong>Answer</strong>", "answer"},
		{"whitespace collapsed", "  a \n\t b  ", "a b"},
		{"code fence markup stripped", `<pre><code class="language-go">x := 1</code></pre>`, "x := 1"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domain.NormalizeAnswerText(tc.in))
		})
	}
}

func TestQuizQuestionHelpers(t *testing.T) {
	t.Parallel()

	q := domain.QuizQuestion{Question: "Q", Options: []string{"a"}, Answer: "a"}
	assert.True(t, q.IsMultipleChoice())
	assert.False(t, q.HasDiagram())

	d := domain.QuizQuestion{Question: "Q", Answer: "a", Diagram: "graph TD\nA --> B"}
	require.True(t, d.HasDiagram())
	assert.False(t, d.IsMultipleChoice())
}
