package api

import (
	"net/http"

	"github.com/quizcrawler/quizcrawler-api/internal/api/shared"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
)

// RatingHandler handles the satisfaction-rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new RatingHandler with the given dependencies.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// SubmitRating handles POST /api/submit-rating. Resubmitting overwrites
// the previous value; the rating scale is owned by the client.
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req SubmitRatingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.ratingService.SubmitRating(r.Context(), userID, req.Rating); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Rating saved"})
}

// CheckRating handles GET /api/check-rating.
func (h *RatingHandler) CheckRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	hasRating, err := h.ratingService.HasRating(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckRatingResponse{HasRating: hasRating})
}
