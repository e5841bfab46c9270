package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DefaultSalt matches the salt baked into already-stored documents.
// Changing it invalidates every existing password digest.
const DefaultSalt = "fs2024salt"

// HashPassword returns the hex sha256 digest of password+salt. The digest
// is part of the shared document format, so this transform must stay
// deterministic and byte-stable.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(password, salt, digest string) bool {
	expected := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
