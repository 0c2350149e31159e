package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/negociacion/admin/internal/mockapi/auth"
	"github.com/negociacion/admin/internal/mockapi/middleware"
	"github.com/negociacion/admin/internal/mockapi/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string    `json:"token"`
	User    auth.User `json:"user"`
	Message string    `json:"message,omitempty"`
}

// LoginHandler handles POST /api/login.
type LoginHandler struct {
	auth   *auth.Service
	logger *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc *auth.Service, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{auth: svc, logger: logger}
}

// ServeHTTP checks the credentials and returns a token with the user profile.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON", requestID)
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Err(w, http.StatusUnauthorized, "Credenciales inválidas", requestID)
			return
		}
		h.logger.Error("login failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "Login failed", requestID)
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{
		Token:   token,
		User:    user,
		Message: "Bienvenido, " + user.Name,
	})
}
