package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/recipebox/recipebox-go/internal/middleware"
	"github.com/recipebox/recipebox-go/internal/model"
	"github.com/recipebox/recipebox-go/internal/service"
)

// AuthHandler handles HTTP requests for registration, login and the profile route.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("register failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/login requests. Invalid credentials and
// missing fields both come back as 400; the body never distinguishes an
// unknown email from a wrong password.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleProtected handles GET /api/protected requests, returning the
// authenticated user's profile without the password hash.
func (h *AuthHandler) HandleProtected(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("profile lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.ProfileResponse{
		Msg:  fmt.Sprintf("Welcome %s!", user.Name),
		User: user,
	})
}
