package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/basket-service/internal/service"
)

// SessionHandler handles sign-in requests
type SessionHandler struct {
	auth *service.AuthService
	log  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(auth *service.AuthService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		auth: auth,
		log:  log,
	}
}

// LoginResponse carries the sign-in outcome
type LoginResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Login handles POST /api/auth/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.log.Warn("failed to decode login request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if !h.auth.SignIn(r.Context(), creds.Email, creds.Password) {
		WriteJSON(w, http.StatusUnauthorized, LoginResponse{Authenticated: false}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{Authenticated: true}, h.log)
}
