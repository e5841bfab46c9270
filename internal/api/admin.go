package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkhub/internal/registry"
	"linkhub/internal/tags"
)

type AdminHandler struct {
	registry *registry.Registry
	admins   *registry.AdminService
	engine   *tags.Engine
}

func NewAdminHandler(reg *registry.Registry, admins *registry.AdminService, engine *tags.Engine) *AdminHandler {
	return &AdminHandler{registry: reg, admins: admins, engine: engine}
}

type AdminUserRow struct {
	Username  string    `json:"username"`
	Slug      string    `json:"slug"`
	DiscordID string    `json:"discordId,omitempty"`
	Published bool      `json:"published"`
	Created   int64     `json:"created"`
	Protected bool      `json:"protected"`
	Tag       *tags.Tag `json:"tag,omitempty"`
}

type AdminStats struct {
	Total       int `json:"total"`
	Published   int `json:"published"`
	Unpublished int `json:"unpublished"`
}

type AdminListResponse struct {
	Users []AdminUserRow `json:"users"`
	Stats AdminStats     `json:"stats"`
}

// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All(r.Context())

	resp := AdminListResponse{Users: make([]AdminUserRow, 0, len(all))}
	for _, u := range all {
		resp.Users = append(resp.Users, AdminUserRow{
			Username:  u.Username,
			Slug:      u.Slug,
			DiscordID: u.DiscordID,
			Published: u.Published,
			Created:   u.Created,
			Protected: h.admins.IsAdmin(u.Slug),
			Tag:       h.engine.Assign(u.Slug, all),
		})
		resp.Stats.Total++
		if u.Published {
			resp.Stats.Published++
		} else {
			resp.Stats.Unpublished++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type AdminResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=4,max=128"`
}

// PUT /api/v1/admin/users/{slug}/password
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req AdminResetPasswordRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.admins.ResetPassword(r.Context(), slug, req.Password); err != nil {
		domainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password reset"})
}

// PUT /api/v1/admin/users/{slug}/publish
func (h *AdminHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req SetPublishRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := h.admins.SetPublished(r.Context(), slug, *req.Published); err != nil {
		domainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/v1/admin/users/{slug}
func (h *AdminHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.admins.Terminate(r.Context(), slug); err != nil {
		domainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "account terminated"})
}
