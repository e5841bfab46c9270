// Package discord holds the read-only clients for the two third-party
// Discord APIs: live presence and server-invite metadata. Both are
// best-effort — any failure degrades to "no data" and never propagates
// into the surrounding profile request.
package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const avatarCDN = "https://cdn.discordapp.com"

// Presence is a user's live status and display identity.
type Presence struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Status    string `json:"status"`
}

type PresenceClient struct {
	baseURL string
	client  *http.Client
}

// NewPresenceClient targets a lanyard-style API whose base already ends
// in /users.
func NewPresenceClient(baseURL string) *PresenceClient {
	return &PresenceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type presenceEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		DiscordUser struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Avatar   string `json:"avatar"`
		} `json:"discord_user"`
		DiscordStatus string `json:"discord_status"`
	} `json:"data"`
}

// Fetch returns the presence for a Discord user ID, or nil when there is
// no data for any reason.
func (c *PresenceClient) Fetch(ctx context.Context, discordID string) *Presence {
	if discordID == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+discordID, nil)
	if err != nil {
		return nil
	}
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("presence fetch failed", "discord_id", discordID, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var envelope presenceEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || !envelope.Success {
		return nil
	}

	p := &Presence{
		ID:       envelope.Data.DiscordUser.ID,
		Username: envelope.Data.DiscordUser.Username,
		Status:   envelope.Data.DiscordStatus,
	}
	if p.Status == "" {
		p.Status = "offline"
	}
	if avatar := envelope.Data.DiscordUser.Avatar; avatar != "" && p.ID != "" {
		p.AvatarURL = fmt.Sprintf("%s/avatars/%s/%s.png?size=256", avatarCDN, p.ID, avatar)
	}
	return p
}
