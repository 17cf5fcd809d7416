package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of a session token when the service
// config does not override it. Clients log in once a day.
const DefaultAccessTokenTTL = 24 * time.Hour

// Role values carried in the "role" claim.
const (
	RoleUser   = "user"
	RoleLeader = "leader"
)

// Claims are the session claims bound to a bearer token. They are never
// stored, only derived from a verified token for the lifetime of a request.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the account, informational only. Identity comes from the
	// subject, so a token carrying only {user, id} does not verify.
	Username string `json:"user,omitempty"`

	// Role of the account when the token was issued. It is not re-checked
	// against the store until the token is reissued.
	Role string `json:"role,omitempty"`
}

// NewAccessClaims builds the claims for a session token. Identical inputs
// produce identical claims, so signing is deterministic for a fixed now.
func NewAccessClaims(subject, username, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Role:     role,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry rejects a token once now reaches exp, and a token used
// before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.validateExpiryAt(time.Now().UTC())
}

func (c *Claims) validateExpiryAt(now time.Time) error {
	if c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateSubject makes sure the token names an account.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrInvalidClaim
	}
	return nil
}

// HasRole reports whether the claims carry exactly the given role.
func (c *Claims) HasRole(role string) bool {
	return c.Role == role
}
