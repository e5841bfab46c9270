package registry

import (
	"context"
	"errors"
	"testing"

	"linkhub/internal/auth"
	"linkhub/internal/store"
)

func newTestAdmin(t *testing.T) (*AdminService, *Registry) {
	t.Helper()
	mem := store.NewMemStore()
	r := New(mem, auth.DefaultSalt)
	ctx := context.Background()

	if _, err := r.Seed(ctx, []SeedAccount{
		{Username: "kiriko", Created: 0, Published: true, Password: "ownerpw"},
		{Username: "snow", Created: 1, Published: true, Password: "snowpw"},
	}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if _, err := r.Register(ctx, "mortal", "pass1", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	return NewAdminService(r, []string{"kiriko", "snow"}), r
}

func TestIsAdmin(t *testing.T) {
	admin, _ := newTestAdmin(t)
	if !admin.IsAdmin("kiriko") || !admin.IsAdmin("snow") {
		t.Fatal("allow-listed slugs not recognized as admins")
	}
	if admin.IsAdmin("mortal") {
		t.Fatal("regular user recognized as admin")
	}
}

func TestTerminateRefusesProtectedAccounts(t *testing.T) {
	admin, r := newTestAdmin(t)
	ctx := context.Background()

	// One admin terminating another admin is rejected in the core,
	// not just hidden in a UI.
	if err := admin.Terminate(ctx, "snow"); !errors.Is(err, ErrProtected) {
		t.Fatalf("Terminate(admin) error = %v, want ErrProtected", err)
	}
	if _, err := r.Get(ctx, "snow"); err != nil {
		t.Fatalf("protected account was removed: %v", err)
	}

	if err := admin.Terminate(ctx, "mortal"); err != nil {
		t.Fatalf("Terminate(regular) error = %v", err)
	}
	if _, err := r.Get(ctx, "mortal"); !errors.Is(err, ErrNotFound) {
		t.Fatal("terminated account still resolvable")
	}
}

func TestSetPublishedRefusesProtectedAccounts(t *testing.T) {
	admin, r := newTestAdmin(t)
	ctx := context.Background()

	if err := admin.SetPublished(ctx, "kiriko", false); !errors.Is(err, ErrProtected) {
		t.Fatalf("SetPublished(admin) error = %v, want ErrProtected", err)
	}
	if err := admin.SetPublished(ctx, "mortal", true); err != nil {
		t.Fatalf("SetPublished(regular) error = %v", err)
	}
	if _, err := r.GetPublished(ctx, "mortal"); err != nil {
		t.Fatalf("admin publish did not take effect: %v", err)
	}
}

func TestResetPasswordAllowedOnProtectedAccounts(t *testing.T) {
	admin, r := newTestAdmin(t)
	ctx := context.Background()

	if err := admin.ResetPassword(ctx, "kiriko", "newownerpw"); err != nil {
		t.Fatalf("ResetPassword(admin) error = %v", err)
	}
	if _, err := r.Authenticate(ctx, "kiriko", "newownerpw"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
