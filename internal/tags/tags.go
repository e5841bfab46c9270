// Package tags computes the display badge for a profile from the static
// special-user table and registration-order ranking.
package tags

import (
	"sort"

	"linkhub/internal/models"
)

const DefaultOGLimit = 30

type Tag struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

var ogTag = Tag{Label: "OG", Class: "tag-og"}

// Engine assigns tags from a full registry snapshot. Assign is a pure
// function of the snapshot; it must be recomputed per render because
// ranks shift as accounts come and go.
type Engine struct {
	special map[string]Tag
	ogLimit int
}

func NewEngine(special map[string]Tag, ogLimit int) *Engine {
	if ogLimit <= 0 {
		ogLimit = DefaultOGLimit
	}
	if special == nil {
		special = map[string]Tag{}
	}
	return &Engine{special: special, ogLimit: ogLimit}
}

// Assign returns the tag for slug, or nil. Special overrides win; after
// that the earliest-registered accounts up to the OG limit get the OG
// tag. Users without a registration timestamp are excluded from ranking.
// Equal timestamps tie-break on slug lexical order so the ranking is a
// total order.
func (e *Engine) Assign(slug string, users []*models.User) *Tag {
	if tag, ok := e.special[slug]; ok {
		t := tag
		return &t
	}

	ranked := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.Created > 0 {
			ranked = append(ranked, u)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Created != ranked[j].Created {
			return ranked[i].Created < ranked[j].Created
		}
		return ranked[i].Slug < ranked[j].Slug
	})

	for i, u := range ranked {
		if u.Slug == slug {
			if i < e.ogLimit {
				t := ogTag
				return &t
			}
			return nil
		}
	}
	return nil
}
