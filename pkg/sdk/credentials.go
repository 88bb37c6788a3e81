package sdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials represents the bearer token used to authenticate backend calls,
// together with the expiry embedded in the token itself.
type Credentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the token's embedded expiry has passed.
func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// DecodeCredential extracts the expiry claim from a bearer token without
// verifying its signature. This is a fast local heuristic for deciding whether
// a stored token is worth restoring; the server remains the source of truth
// for validity.
func DecodeCredential(token string) (*Credentials, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("token carries no expiry claim")
	}

	return &Credentials{Token: token, ExpiresAt: exp.Time}, nil
}
