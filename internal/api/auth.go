package api

import (
	"errors"
	"net/http"
	"time"

	"linkhub/internal/registry"
	"linkhub/internal/session"
)

type AuthHandler struct {
	registry *registry.Registry
	sessions *session.Manager
}

func NewAuthHandler(reg *registry.Registry, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{registry: reg, sessions: sessions}
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=4,max=128"`
	DiscordID string `json:"discordId" validate:"omitempty,max=32"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	user, err := h.registry.Register(r.Context(), req.Username, req.Password, req.DiscordID)
	if err != nil {
		domainError(w, err)
		return
	}

	token, expiresAt, err := h.sessions.Login(w, user.Slug)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		User:      userResponseFromModel(user),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	user, err := h.registry.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "User not found")
			return
		}
		domainError(w, err)
		return
	}

	token, expiresAt, err := h.sessions.Login(w, user.Slug)
	if err != nil {
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		User:      userResponseFromModel(user),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
