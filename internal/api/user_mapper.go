package api

import (
	"linkhub/internal/models"
	"linkhub/internal/tags"
)

// UserResponse is the account view returned to its owner. The stored password
// digest never leaves the server.
type UserResponse struct {
	Username   string          `json:"username"`
	Slug       string          `json:"slug"`
	DiscordID  string          `json:"discordId,omitempty"`
	Bio        string          `json:"bio"`
	Servers    []string        `json:"servers"`
	Folders    []models.Folder `json:"folders"`
	Published  bool            `json:"published"`
	Created    int64           `json:"created"`
	Tag        *tags.Tag       `json:"tag,omitempty"`
	ProfileURL string          `json:"profileUrl,omitempty"`
}

func userResponseFromModel(u *models.User) UserResponse {
	servers := u.Servers
	if servers == nil {
		servers = []string{}
	}
	folders := u.Folders
	if folders == nil {
		folders = []models.Folder{}
	}

	return UserResponse{
		Username:  u.Username,
		Slug:      u.Slug,
		DiscordID: u.DiscordID,
		Bio:       u.Bio,
		Servers:   servers,
		Folders:   folders,
		Published: u.Published,
		Created:   u.Created,
	}
}
