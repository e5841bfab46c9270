package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var invitePrefix = regexp.MustCompile(`^(https?://)?(www\.)?(discord\.gg/|discord\.com/invite/)?`)

// CleanInviteCode strips any discord.gg / discord.com/invite prefix a
// user pasted, leaving the bare code.
func CleanInviteCode(raw string) string {
	return invitePrefix.ReplaceAllString(strings.TrimSpace(raw), "")
}

// Server is the resolved metadata for one invite code. Resolved is false
// when the invite endpoint could not tell us about the guild; the entry
// still renders as a join link for the cleaned code.
type Server struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	IconURL     string `json:"iconUrl,omitempty"`
	MemberCount int    `json:"memberCount,omitempty"`
	InviteURL   string `json:"inviteUrl"`
	Resolved    bool   `json:"resolved"`
}

type InviteClient struct {
	baseURL string
	client  *http.Client
}

// NewInviteClient targets a Discord-style invite API whose base already
// ends in /invites.
func NewInviteClient(baseURL string) *InviteClient {
	return &InviteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type inviteEnvelope struct {
	Guild struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	} `json:"guild"`
	ApproximateMemberCount int `json:"approximate_member_count"`
}

// Fetch resolves an invite code to guild metadata, degrading to an
// unresolved placeholder on any failure.
func (c *InviteClient) Fetch(ctx context.Context, rawCode string) Server {
	code := CleanInviteCode(rawCode)
	unknown := Server{
		Code:      code,
		Name:      "discord.gg/" + code,
		InviteURL: "https://discord.gg/" + code,
	}
	if code == "" {
		return unknown
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+code+"?with_counts=true", nil)
	if err != nil {
		return unknown
	}
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("invite fetch failed", "code", code, "error", err)
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unknown
	}

	var envelope inviteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Guild.Name == "" {
		return unknown
	}

	server := Server{
		Code:        code,
		Name:        envelope.Guild.Name,
		MemberCount: envelope.ApproximateMemberCount,
		InviteURL:   "https://discord.gg/" + code,
		Resolved:    true,
	}
	if envelope.Guild.Icon != "" && envelope.Guild.ID != "" {
		server.IconURL = fmt.Sprintf("%s/icons/%s/%s.png", avatarCDN, envelope.Guild.ID, envelope.Guild.Icon)
	}
	return server
}
