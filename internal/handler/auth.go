package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yettapastries/storefront/internal/auth"
	"github.com/yettapastries/storefront/pkg/logger"
)

// AuthHandler serves the /api/auth routes.
type AuthHandler struct {
	auth   *auth.Service
	reset  *auth.ResetService
	logger *slog.Logger
}

// NewAuthHandler creates the handler. A nil logger falls back to a discard
// logger.
func NewAuthHandler(authSvc *auth.Service, resetSvc *auth.ResetService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &AuthHandler{auth: authSvc, reset: resetSvc, logger: log}
}

// Routes registers the auth endpoints on the router.
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Post("/google", h.google)
	r.Post("/forgot-password", h.forgotPassword)
	r.Post("/reset-password", h.resetPassword)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	Credential string `json:"credential"`
}

type authResponse struct {
	Token string          `json:"token"`
	User  auth.PublicUser `json:"user"`
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			respondMessage(w, http.StatusConflict, "Email already exists")
			return
		}
		h.logger.ErrorContext(r.Context(), "signup failed", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, auth.ErrPasswordLoginUnavailable):
			respondMessage(w, http.StatusUnauthorized, "Please log in with Google, or reset your password.")
		default:
			h.logger.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

func (h *AuthHandler) google(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.auth.GoogleLogin(r.Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrGoogleTokenInvalid):
			respondMessage(w, http.StatusUnauthorized, "Invalid Google token")
		case errors.Is(err, auth.ErrGoogleUnavailable):
			h.logger.ErrorContext(r.Context(), "google verification unavailable", slog.Any("error", err))
			respondMessage(w, http.StatusInternalServerError, "Failed to verify with Google")
		default:
			h.logger.ErrorContext(r.Context(), "google login failed", slog.Any("error", err))
			respondMessage(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	respondJSON(w, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ack, err := h.reset.RequestReset(r.Context(), req.Email)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "reset request failed", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Failed to process request")
		return
	}

	respondMessage(w, http.StatusOK, ack)
}

func (h *AuthHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.reset.CompleteReset(r.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrResetTokenInvalid):
			respondMessage(w, http.StatusBadRequest, "Invalid or expired token")
		case errors.Is(err, auth.ErrResetTokenExpired):
			respondMessage(w, http.StatusBadRequest, "Token has expired")
		case errors.Is(err, auth.ErrResetStateInvalid):
			respondMessage(w, http.StatusBadRequest, "Invalid token state")
		default:
			h.logger.ErrorContext(r.Context(), "password reset failed", slog.Any("error", err))
			respondMessage(w, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	respondMessage(w, http.StatusOK, "Password reset successful. You can now login.")
}
