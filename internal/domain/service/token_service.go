// Package service declares the domain-level service contracts implemented by
// the infra layer.
package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the payload carried by a verified session cookie.
type SessionClaims struct {
	UserID     uuid.UUID
	ValidUntil time.Time
}

// TokenService signs and verifies the two cookie payloads: the session cookie
// and the magic-link identifier cookie. Each uses its own secret so a leaked
// identifier secret cannot forge sessions.
type TokenService interface {
	// IssueSessionToken signs a session payload expiring at validUntil.
	IssueSessionToken(userID uuid.UUID, validUntil time.Time) (string, error)

	// ParseSessionToken verifies the signature and expiry of a session token.
	// Verification is a pure function of the token string and the clock.
	ParseSessionToken(token string) (*SessionClaims, error)

	// IssueLinkToken signs a magic-link identifier expiring with the link.
	IssueLinkToken(linkID uuid.UUID, validUntil time.Time) (string, error)

	// ParseLinkToken verifies an identifier token and returns the link id.
	ParseLinkToken(token string) (uuid.UUID, error)
}
