package auth

import (
	"strings"
	"testing"
	"time"
)

func TestHashPasswordIsDeterministic(t *testing.T) {
	a := HashPassword("pass1", DefaultSalt)
	b := HashPassword("pass1", DefaultSalt)
	if a != b {
		t.Fatalf("same input produced different digests: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(a))
	}
	if a != strings.ToLower(a) {
		t.Fatalf("digest not lowercase hex: %q", a)
	}
}

func TestHashPasswordSaltChangesDigest(t *testing.T) {
	if HashPassword("pass1", "salt-a") == HashPassword("pass1", "salt-b") {
		t.Fatal("different salts produced the same digest")
	}
	if HashPassword("pass1", DefaultSalt) == HashPassword("pass2", DefaultSalt) {
		t.Fatal("different passwords produced the same digest")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("pass1", DefaultSalt)
	if !VerifyPassword("pass1", DefaultSalt, digest) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("pass2", DefaultSalt, digest) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("pass1", "other-salt", digest) {
		t.Fatal("wrong salt accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("0123456789abcdef0123456789abcdef", time.Hour)

	token, expiry, err := svc.Issue("alicesmith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if time.Until(expiry) <= 0 {
		t.Fatalf("expiry in the past: %v", expiry)
	}

	slug, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if slug != "alicesmith" {
		t.Fatalf("slug = %q, want %q", slug, "alicesmith")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("0123456789abcdef0123456789abcdef", time.Hour)
	verifier := NewTokenService("ffffffffffffffffffffffffffffffff", time.Hour)

	token, _, err := issuer.Issue("alicesmith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := verifier.Resolve(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService("0123456789abcdef0123456789abcdef", -time.Minute)

	token, _, err := svc.Issue("alicesmith")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := svc.Resolve(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("0123456789abcdef0123456789abcdef", time.Hour)
	if _, err := svc.Resolve("not-a-token"); err == nil {
		t.Fatal("garbage token was accepted")
	}
}
