// Package export renders a saved quiz as a downloadable PDF document.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/quizcrawler/quizcrawler-api/internal/domain"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// plainText strips HTML markup from generated question text so it can be
// laid out as PDF body copy.
func plainText(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	return strings.TrimSpace(s)
}

// QuizPDF lays out the saved quiz as a printable answer sheet. Questions
// appear first; the answer key follows on its own page so the document can
// be used for practice before checking.
func QuizPDF(quiz *domain.SavedQuiz, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Quiz Crawler", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Generated %s | %d questions", generatedAt.Format("2006-01-02"), len(quiz.Questions)),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	optionLabels := []string{"A", "B", "C", "D", "E", "F"}

	for i, q := range quiz.Questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("Question %d", i+1), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, plainText(q.Question), "", "L", false)

		if q.HasDiagram() {
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 5, q.Diagram, "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		}

		for j, opt := range q.Options {
			label := fmt.Sprintf("%d", j+1)
			if j < len(optionLabels) {
				label = optionLabels[j]
			}
			pdf.MultiCell(0, 6, fmt.Sprintf("  %s. %s", label, plainText(opt)), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Answer Key", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	for i, q := range quiz.Questions {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("Question %d", i+1), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, plainText(q.Answer), "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
