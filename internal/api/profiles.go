package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"linkhub/internal/discord"
	"linkhub/internal/models"
	"linkhub/internal/registry"
	"linkhub/internal/tags"
)

type ProfileHandler struct {
	registry *registry.Registry
	engine   *tags.Engine
	presence *discord.PresenceClient
	invites  *discord.InviteClient
}

func NewProfileHandler(reg *registry.Registry, engine *tags.Engine, presence *discord.PresenceClient, invites *discord.InviteClient) *ProfileHandler {
	return &ProfileHandler{registry: reg, engine: engine, presence: presence, invites: invites}
}

type ProfileSummary struct {
	Username string    `json:"username"`
	Slug     string    `json:"slug"`
	Bio      string    `json:"bio"`
	Tag      *tags.Tag `json:"tag,omitempty"`
}

type ProfileListResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
}

// GET /api/v1/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All(r.Context())

	profiles := make([]ProfileSummary, 0)
	for _, u := range all {
		if !u.Published {
			continue
		}
		profiles = append(profiles, ProfileSummary{
			Username: u.Username,
			Slug:     u.Slug,
			Bio:      u.Bio,
			Tag:      h.engine.Assign(u.Slug, all),
		})
	}

	writeJSON(w, http.StatusOK, ProfileListResponse{Profiles: profiles})
}

type ProfileResponse struct {
	Username string            `json:"username"`
	Slug     string            `json:"slug"`
	Bio      string            `json:"bio"`
	Tag      *tags.Tag         `json:"tag,omitempty"`
	Folders  []models.Folder   `json:"folders"`
	Presence *discord.Presence `json:"presence,omitempty"`
	Servers  []discord.Server  `json:"servers"`
}

// GET /{slug}
//
// Presence and invite lookups are best effort and run concurrently; a dead
// Discord API never blocks the profile itself.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	all := h.registry.All(r.Context())
	var user *models.User
	for _, u := range all {
		if u.Slug == slug && u.Published {
			user = u
			break
		}
	}
	if user == nil {
		notFound(w, "This profile doesn't exist or isn't public")
		return
	}

	resp := ProfileResponse{
		Username: user.Username,
		Slug:     user.Slug,
		Bio:      user.Bio,
		Tag:      h.engine.Assign(user.Slug, all),
		Folders:  user.Folders,
		Servers:  make([]discord.Server, len(user.Servers)),
	}
	if resp.Folders == nil {
		resp.Folders = []models.Folder{}
	}

	var wg sync.WaitGroup
	if user.DiscordID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp.Presence = h.presence.Fetch(r.Context(), user.DiscordID)
		}()
	}
	for i, code := range user.Servers {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			resp.Servers[i] = h.invites.Fetch(r.Context(), code)
		}(i, code)
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, resp)
}
