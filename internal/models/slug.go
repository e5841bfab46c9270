package models

import (
	"regexp"
	"strings"
)

const maxSlugLen = 20

var slugStrip = regexp.MustCompile(`[^a-z0-9]`)

// Slugify derives the identity key for a username: lowercase, strip
// everything outside [a-z0-9], truncate to 20 characters. Idempotent.
// Two usernames that slugify to the same value are the same identity.
func Slugify(username string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(username), "")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}
