package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the fields of the backend access token the frontend
// needs. The signature is not checked here; the backend verifies the token
// on every call.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// ParseTokenClaims decodes the claims of a backend bearer token.
func ParseTokenClaims(token string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	var tc TokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		tc.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		tc.Role = role
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("token exp: %w", err)
	}
	if exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return tc, nil
}

// SessionExpiry returns the earlier of now+ttl and the token's expiry.
// Tokens that cannot be parsed fall back to now+ttl.
func SessionExpiry(token string, now time.Time, ttl time.Duration) time.Time {
	expiry := now.Add(ttl)
	tc, err := ParseTokenClaims(token)
	if err != nil || tc.ExpiresAt.IsZero() {
		return expiry
	}
	if tc.ExpiresAt.Before(expiry) {
		return tc.ExpiresAt
	}
	return expiry
}

var errNoToken = errors.New("login response carried no token")
