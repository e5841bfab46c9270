package registry

import (
	"context"
	"strings"

	"linkhub/internal/auth"
	"linkhub/internal/models"
)

// SeedAccount is a bootstrap account definition. Created holds a small
// sentinel value (0..3 for system accounts) so seeded accounts sort ahead
// of every real registration. Either Password or PasswordHash is set;
// PasswordHash wins so configs can avoid carrying plaintext.
type SeedAccount struct {
	Username     string `yaml:"username"`
	Slug         string `yaml:"slug"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Bio          string `yaml:"bio"`
	Published    bool   `yaml:"published"`
	Created      int64  `yaml:"created"`
}

// Seed inserts bootstrap accounts that do not already exist, by slug, and
// persists once if anything was inserted. Idempotent: a second run is a
// no-op and performs no write.
func (r *Registry) Seed(ctx context.Context, accounts []SeedAccount) (int, error) {
	if len(accounts) == 0 {
		return 0, nil
	}

	users := r.load(ctx)
	inserted := 0
	for _, acct := range accounts {
		slug := acct.Slug
		if slug == "" {
			slug = models.Slugify(acct.Username)
		}
		if slug == "" {
			continue
		}
		if _, exists := users[slug]; exists {
			continue
		}

		hash := acct.PasswordHash
		if hash == "" {
			hash = auth.HashPassword(acct.Password, r.salt)
		}
		users[slug] = &models.User{
			Username:     strings.TrimSpace(acct.Username),
			Slug:         slug,
			PasswordHash: hash,
			Bio:          acct.Bio,
			Servers:      []string{},
			Published:    acct.Published,
			Created:      acct.Created,
		}
		inserted++
	}

	if inserted == 0 {
		return 0, nil
	}
	if err := r.save(ctx, users); err != nil {
		return 0, err
	}
	return inserted, nil
}
