package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the signed session tokens that stand
// in for the device-local session pointer. The only payload is the slug;
// whether the slug still resolves to an account is the caller's problem.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type SessionClaims struct {
	Slug string `json:"slug"`
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *TokenService) Issue(slug string) (string, time.Time, error) {
	expiry := time.Now().Add(s.ttl)
	claims := SessionClaims{
		Slug: slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   slug,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiry, nil
}

// Resolve returns the slug carried by a valid token.
func (s *TokenService) Resolve(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Slug == "" {
		return "", fmt.Errorf("invalid session claims")
	}
	return claims.Slug, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
