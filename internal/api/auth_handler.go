package api

import (
	"net/http"

	"github.com/quizcrawler/quizcrawler-api/internal/api/shared"
	"github.com/quizcrawler/quizcrawler-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// GoogleLogin handles the /api/auth/google endpoint. It exchanges the
// popup's Google access token for a session JWT, creating or refreshing
// the user record on the way.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, user, err := h.authService.LoginWithGoogle(r.Context(), req.Token)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token:   token,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	})
}

// Logout handles the /api/auth/logout endpoint. Session tokens are
// stateless and simply expire, so this only acknowledges; the client
// discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Logged out"})
}
