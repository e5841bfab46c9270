// Package registry is the in-memory user registry derived from the shared
// document. Every operation loads the latest document first, mutates the
// mapping in memory, and writes the whole document back. Overlapping
// cycles from different sessions clobber each other (last write wins);
// that is a property of the document store, preserved deliberately.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"linkhub/internal/auth"
	"linkhub/internal/models"
	"linkhub/internal/store"
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

type Registry struct {
	store     store.DocumentStore
	salt      string
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

func New(s store.DocumentStore, salt string) *Registry {
	return &Registry{
		store:     s,
		salt:      salt,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// load fetches the latest document and runs the one-time legacy link
// migration on every record. Migrated shapes are persisted on the next
// save, not eagerly.
func (r *Registry) load(ctx context.Context) map[string]*models.User {
	users := r.store.Load(ctx)
	for _, u := range users {
		u.MigrateLinks()
	}
	return users
}

func (r *Registry) save(ctx context.Context, users map[string]*models.User) error {
	if err := r.store.Save(ctx, users); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Register creates an account. The slug derived from the username is the
// identity key; a collision rejects the later registration.
func (r *Registry) Register(ctx context.Context, username, password, discordID string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	slug := models.Slugify(username)
	if slug == "" {
		return nil, fmt.Errorf("%w: username must contain letters or digits", ErrValidation)
	}

	users := r.load(ctx)
	if _, exists := users[slug]; exists {
		return nil, fmt.Errorf("%w: %q", ErrConflict, slug)
	}

	user := &models.User{
		Username:     username,
		Slug:         slug,
		PasswordHash: auth.HashPassword(password, r.salt),
		DiscordID:    strings.TrimSpace(discordID),
		Servers:      []string{},
		Published:    false,
		Created:      r.now().UnixMilli(),
	}
	users[slug] = user

	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves the username to a slug and checks the password
// digest. Missing account and bad password are distinct failures.
func (r *Registry) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	slug := models.Slugify(username)
	users := r.load(ctx)

	user, ok := users[slug]
	if !ok {
		return nil, ErrNotFound
	}
	if !auth.VerifyPassword(password, r.salt, user.PasswordHash) {
		return nil, ErrCredentials
	}
	return user, nil
}

func (r *Registry) Get(ctx context.Context, slug string) (*models.User, error) {
	user, ok := r.load(ctx)[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetPublished resolves a slug for public viewing. Unpublished profiles
// are indistinguishable from absent ones.
func (r *Registry) GetPublished(ctx context.Context, slug string) (*models.User, error) {
	user, ok := r.load(ctx)[slug]
	if !ok || !user.Published {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListPublished returns published users ordered by registration.
func (r *Registry) ListPublished(ctx context.Context) []*models.User {
	var out []*models.User
	for _, u := range r.load(ctx) {
		if u.Published {
			out = append(out, u)
		}
	}
	sortUsers(out)
	return out
}

// All returns every user ordered by registration. Admin listing.
func (r *Registry) All(ctx context.Context) []*models.User {
	users := r.load(ctx)
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	sortUsers(out)
	return out
}

// ProfilePatch carries the editable profile fields; nil means unchanged.
type ProfilePatch struct {
	Bio       *string
	DiscordID *string
	Servers   *[]string
	Folders   *[]models.Folder
}

// UpdateProfile applies a patch, sanitizes display text, enforces the
// structural limits, and persists. Legacy links are gone after the first
// edit: load already migrated them into a folder.
func (r *Registry) UpdateProfile(ctx context.Context, slug string, patch ProfilePatch) (*models.User, error) {
	users := r.load(ctx)
	user, ok := users[slug]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Bio != nil {
		user.Bio = strings.TrimSpace(r.sanitizer.Sanitize(*patch.Bio))
	}
	if patch.DiscordID != nil {
		user.DiscordID = strings.TrimSpace(*patch.DiscordID)
	}
	if patch.Servers != nil {
		if len(*patch.Servers) > models.MaxServers {
			return nil, fmt.Errorf("%w: at most %d servers", ErrValidation, models.MaxServers)
		}
		user.Servers = *patch.Servers
	}
	if patch.Folders != nil {
		if len(*patch.Folders) > models.MaxFolders {
			return nil, fmt.Errorf("%w: at most %d folders", ErrValidation, models.MaxFolders)
		}
		for _, f := range *patch.Folders {
			if len(f.Links) > models.MaxLinksPerFolder {
				return nil, fmt.Errorf("%w: at most %d links per folder", ErrValidation, models.MaxLinksPerFolder)
			}
		}
		user.Folders = *patch.Folders
		for i := range user.Folders {
			f := &user.Folders[i]
			f.Name = strings.TrimSpace(r.sanitizer.Sanitize(f.Name))
			for j := range f.Links {
				f.Links[j].Title = strings.TrimSpace(r.sanitizer.Sanitize(f.Links[j].Title))
				f.Links[j].URL = strings.TrimSpace(f.Links[j].URL)
			}
		}
	}

	user.Links = nil
	user.Normalize()

	if err := r.save(ctx, users); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Registry) SetPublished(ctx context.Context, slug string, published bool) error {
	users := r.load(ctx)
	user, ok := users[slug]
	if !ok {
		return ErrNotFound
	}
	user.Published = published
	return r.save(ctx, users)
}

// Delete removes the slug key from the document entirely.
func (r *Registry) Delete(ctx context.Context, slug string) error {
	users := r.load(ctx)
	if _, ok := users[slug]; !ok {
		return ErrNotFound
	}
	delete(users, slug)
	return r.save(ctx, users)
}

func (r *Registry) ResetPassword(ctx context.Context, slug, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}
	users := r.load(ctx)
	user, ok := users[slug]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = auth.HashPassword(newPassword, r.salt)
	return r.save(ctx, users)
}

// sortUsers orders by registration time, slug as the tie-break so the
// order is total even when timestamps collide.
func sortUsers(users []*models.User) {
	sort.Slice(users, func(i, j int) bool {
		if users[i].Created != users[j].Created {
			return users[i].Created < users[j].Created
		}
		return users[i].Slug < users[j].Slug
	})
}
