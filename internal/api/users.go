package api

import (
	"net/http"

	"linkhub/internal/models"
	"linkhub/internal/registry"
	"linkhub/internal/session"
	"linkhub/internal/tags"
)

type UserHandler struct {
	registry *registry.Registry
	sessions *session.Manager
	engine   *tags.Engine
	baseURL  string
}

func NewUserHandler(reg *registry.Registry, sessions *session.Manager, engine *tags.Engine, baseURL string) *UserHandler {
	return &UserHandler{registry: reg, sessions: sessions, engine: engine, baseURL: baseURL}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	resp := userResponseFromModel(user)
	resp.Tag = h.engine.Assign(user.Slug, h.registry.All(r.Context()))
	if user.Published {
		resp.ProfileURL = h.baseURL + "/" + user.Slug
	}

	writeJSON(w, http.StatusOK, resp)
}

type UpdateMeRequest struct {
	Bio       *string          `json:"bio" validate:"omitempty,max=500"`
	DiscordID *string          `json:"discordId" validate:"omitempty,max=32"`
	Servers   *[]string        `json:"servers" validate:"omitempty,max=5,dive,max=200"`
	Folders   *[]models.Folder `json:"folders" validate:"omitempty,max=10"`
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	var req UpdateMeRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	updated, err := h.registry.UpdateProfile(r.Context(), user.Slug, registry.ProfilePatch{
		Bio:       req.Bio,
		DiscordID: req.DiscordID,
		Servers:   req.Servers,
		Folders:   req.Folders,
	})
	if err != nil {
		domainError(w, err)
		return
	}

	resp := userResponseFromModel(updated)
	resp.Tag = h.engine.Assign(updated.Slug, h.registry.All(r.Context()))
	if updated.Published {
		resp.ProfileURL = h.baseURL + "/" + updated.Slug
	}

	writeJSON(w, http.StatusOK, resp)
}

type SetPublishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// PUT /api/v1/users/me/publish
func (h *UserHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	var req SetPublishRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.registry.SetPublished(r.Context(), user.Slug, *req.Published); err != nil {
		domainError(w, err)
		return
	}

	updated, err := h.registry.Get(r.Context(), user.Slug)
	if err != nil {
		domainError(w, err)
		return
	}

	resp := userResponseFromModel(updated)
	if updated.Published {
		resp.ProfileURL = h.baseURL + "/" + updated.Slug
	}

	writeJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)

	if err := h.registry.Delete(r.Context(), user.Slug); err != nil {
		domainError(w, err)
		return
	}

	h.sessions.Logout(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "account deleted"})
}
