package api

import (
	"net/http"
	"time"

	"github.com/quizcrawler/quizcrawler-api/internal/api/shared"
	"github.com/quizcrawler/quizcrawler-api/internal/domain"
	"github.com/quizcrawler/quizcrawler-api/internal/export"
	"github.com/quizcrawler/quizcrawler-api/internal/extract"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/logger"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
)

// QuizHandler handles quiz generation, extraction, and the saved-quiz
// endpoints.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GenerateQuiz handles the /api/generate-quiz endpoint.
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req GenerateQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	quizReq := &domain.QuizRequest{
		Content:    req.Content,
		Difficulty: req.Difficulty,
		Category:   req.Category,
		Count:      req.Count,
	}
	if err := quizReq.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.quizService.GenerateQuiz(r.Context(), userID, quizReq)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The response body is the bare question array; the rendered snapshot
	// is served by GET /api/quiz/last.
	shared.RespondWithJSON(w, r, http.StatusOK, saved.Questions)
}

// Extract handles the /api/extract endpoint.
func (h *QuizHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	var req ExtractRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	content, err := extract.FromHTML(req.HTML)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	logger.FromContext(r.Context()).Debug("extracted page content",
		"url", req.URL,
		"content_length", len(content))

	shared.RespondWithJSON(w, r, http.StatusOK, ExtractResponse{Content: content})
}

// GetLastQuiz handles GET /api/quiz/last.
func (h *QuizHandler) GetLastQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	saved, err := h.quizService.LastQuiz(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SavedQuizResponse{
		Questions:      saved.Questions,
		RenderedMarkup: saved.RenderedMarkup,
	})
}

// SaveLastQuiz handles PUT /api/quiz/last.
func (h *QuizHandler) SaveLastQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SaveQuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}
	for _, q := range req.Questions {
		if err := q.Validate(); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	saved, err := h.quizService.SaveQuiz(r.Context(), userID, req.Questions)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SavedQuizResponse{
		Questions:      saved.Questions,
		RenderedMarkup: saved.RenderedMarkup,
	})
}

// DeleteLastQuiz handles DELETE /api/quiz/last. Deleting when no quiz is
// saved succeeds; the end state is the same.
func (h *QuizHandler) DeleteLastQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.quizService.ClearQuiz(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Quiz cleared"})
}

// ExportLastQuiz handles GET /api/quiz/last/export, returning the saved
// quiz as a PDF attachment.
func (h *QuizHandler) ExportLastQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	saved, err := h.quizService.LastQuiz(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	pdfBytes, err := export.QuizPDF(saved, time.Now())
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to render quiz PDF", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to export quiz")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quiz.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to write PDF response", "error", err)
	}
}
