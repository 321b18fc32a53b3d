package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"socialCPT/internal/apperror"
	"socialCPT/internal/models"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	email := normalizeEmail(req.Email)

	user, token, err := h.AuthService.Register(r.Context(), strings.TrimSpace(req.Username), email, req.Password)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{"user_id": user.UserID, "email": user.Email}).Info("User registered")
	writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			WriteError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, models.ToUserDTO(user))
}
