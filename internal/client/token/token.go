// Package token decodes the claims embedded in a bearer credential
// without verifying its signature. The backend is the authority on every
// request; decoded claims are a rendering hint only, never an
// authorization decision.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedCredential is returned when a credential cannot be decoded.
var ErrMalformedCredential = errors.New("malformed credential")

// Claims is the advisory payload carried by a marketplace credential.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// Decode splits the credential into its segments and decodes the claims
// segment. The signature is not checked. Fails with ErrMalformedCredential
// when the credential lacks the expected structure or the claims segment
// is not decodable.
func Decode(credential string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return nil, ErrMalformedCredential
	}
	return claims, nil
}

// Expired reports whether the claims' expiry is at or before now.
// Claims without an expiry never expire.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !c.ExpiresAt.Time.After(now)
}
