package tags

import (
	"fmt"
	"testing"

	"linkhub/internal/models"
)

func TestAssignSpecialOverrideWins(t *testing.T) {
	e := NewEngine(map[string]Tag{
		"kiriko": {Label: "Owner", Class: "tag-owner"},
	}, 30)

	// Even with no users in the snapshot the override applies.
	tag := e.Assign("kiriko", nil)
	if tag == nil || tag.Label != "Owner" {
		t.Fatalf("tag = %+v, want Owner", tag)
	}
}

func TestAssignOGByRegistrationOrder(t *testing.T) {
	e := NewEngine(nil, 2)
	users := []*models.User{
		{Slug: "third", Created: 300},
		{Slug: "first", Created: 100},
		{Slug: "second", Created: 200},
	}

	for slug, want := range map[string]bool{
		"first":  true,
		"second": true,
		"third":  false,
	} {
		tag := e.Assign(slug, users)
		if got := tag != nil; got != want {
			t.Fatalf("Assign(%q) og = %v, want %v", slug, got, want)
		}
		if want && tag.Label != "OG" {
			t.Fatalf("Assign(%q) label = %q, want OG", slug, tag.Label)
		}
	}
}

func TestAssignExcludesUsersWithoutCreated(t *testing.T) {
	e := NewEngine(nil, 30)
	users := []*models.User{
		{Slug: "ghost"}, // no registration timestamp
		{Slug: "real", Created: 100},
	}

	if tag := e.Assign("ghost", users); tag != nil {
		t.Fatalf("Assign(ghost) = %+v, want nil", tag)
	}
	if tag := e.Assign("real", users); tag == nil {
		t.Fatal("Assign(real) = nil, want OG")
	}
}

func TestAssignTieBreaksOnSlug(t *testing.T) {
	e := NewEngine(nil, 1)
	users := []*models.User{
		{Slug: "zed", Created: 100},
		{Slug: "abe", Created: 100},
	}

	if tag := e.Assign("abe", users); tag == nil {
		t.Fatal("lexically-first slug should take the last OG spot")
	}
	if tag := e.Assign("zed", users); tag != nil {
		t.Fatalf("Assign(zed) = %+v, want nil", tag)
	}
}

func TestAssignIsDeterministic(t *testing.T) {
	e := NewEngine(nil, 5)
	var users []*models.User
	for i := 0; i < 10; i++ {
		users = append(users, &models.User{Slug: fmt.Sprintf("user%02d", i), Created: int64(100 + i)})
	}

	first := e.Assign("user04", users)
	for i := 0; i < 50; i++ {
		again := e.Assign("user04", users)
		if (first == nil) != (again == nil) {
			t.Fatal("Assign not deterministic for a fixed snapshot")
		}
	}
	if first == nil {
		t.Fatal("rank 4 with limit 5 should be OG")
	}
	if e.Assign("user05", users) != nil {
		t.Fatal("rank 5 with limit 5 should not be OG")
	}
}

func TestAssignRanksShiftAfterDeletion(t *testing.T) {
	e := NewEngine(nil, 1)
	users := []*models.User{
		{Slug: "first", Created: 100},
		{Slug: "second", Created: 200},
	}

	if e.Assign("second", users) != nil {
		t.Fatal("second should be outside limit 1")
	}

	// First account deleted; the snapshot shrinks and second moves up.
	if e.Assign("second", users[1:]) == nil {
		t.Fatal("second should inherit the OG spot after deletion")
	}
}
