package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkhub/internal/auth"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(auth.NewTokenService("0123456789abcdef0123456789abcdef", time.Hour), false)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	m := newTestManager(t)
	rr := httptest.NewRecorder()

	token, expiry, err := m.Login(rr, "alicesmith")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(expiry) <= 0 {
		t.Fatalf("expiry in the past: %v", expiry)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Fatalf("cookie name = %q, want %q", c.Name, CookieName)
	}
	if c.Value != token {
		t.Fatal("cookie value differs from returned token")
	}
	if !c.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
}

func TestCurrentSlugFromCookie(t *testing.T) {
	m := newTestManager(t)
	rr := httptest.NewRecorder()
	token, _, err := m.Login(rr, "alicesmith")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	if got := m.CurrentSlug(req); got != "alicesmith" {
		t.Fatalf("CurrentSlug() = %q, want alicesmith", got)
	}
}

func TestCurrentSlugFromBearerHeader(t *testing.T) {
	m := newTestManager(t)
	token, _, err := m.Login(httptest.NewRecorder(), "alicesmith")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if got := m.CurrentSlug(req); got != "alicesmith" {
		t.Fatalf("CurrentSlug() = %q, want alicesmith", got)
	}
}

func TestCurrentSlugRejectsInvalidSessions(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := m.CurrentSlug(req); got != "" {
		t.Fatalf("CurrentSlug() with no session = %q, want empty", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	if got := m.CurrentSlug(req); got != "" {
		t.Fatalf("CurrentSlug() with garbage cookie = %q, want empty", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	if got := m.CurrentSlug(req); got != "" {
		t.Fatalf("CurrentSlug() with non-bearer header = %q, want empty", got)
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	m := newTestManager(t)
	rr := httptest.NewRecorder()
	m.Logout(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("logout cookie MaxAge = %d, want negative", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatal("logout cookie should clear the value")
	}
}
