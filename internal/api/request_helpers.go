package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/quizcrawler/quizcrawler-api/internal/api/middleware"
	"github.com/quizcrawler/quizcrawler-api/internal/api/shared"
)

// requireUserID extracts the authenticated user's UUID placed in the context
// by the auth middleware, or writes a 401 response. Returns false when the
// response has been written.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// HandleAPIError maps err to a status code and safe message and writes the
// response. When defaultMsg is non-empty it overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	statusCode := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}
