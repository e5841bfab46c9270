// Package session manages the device-local authentication pointer. The
// legacy client kept the active slug in a value named fs_session; here
// the same fixed name carries a signed token whose only payload is the
// slug. The token proves nothing about the account still existing —
// callers must resolve the slug against the registry and treat a miss as
// logged out.
package session

import (
	"net/http"
	"strings"
	"time"

	"linkhub/internal/auth"
)

const CookieName = "fs_session"

type Manager struct {
	tokens *auth.TokenService
	secure bool
}

func NewManager(tokens *auth.TokenService, secure bool) *Manager {
	return &Manager{tokens: tokens, secure: secure}
}

// Login issues a session token for slug and installs it as the session
// cookie. The token is also returned so API clients can carry it as a
// bearer header instead.
func (m *Manager) Login(w http.ResponseWriter, slug string) (string, time.Time, error) {
	token, expiry, err := m.tokens.Issue(slug)
	if err != nil {
		return "", time.Time{}, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, expiry, nil
}

func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentSlug extracts the authenticated slug from the request, checking
// the bearer header first and the session cookie second. Empty string
// means no valid session.
func (m *Manager) CurrentSlug(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			if slug, err := m.tokens.Resolve(parts[1]); err == nil {
				return slug
			}
		}
		return ""
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	slug, err := m.tokens.Resolve(cookie.Value)
	if err != nil {
		return ""
	}
	return slug
}
