package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionDuration selects how long the session issued by a redeemed magic
// link stays valid.
type SessionDuration string

const (
	// SessionEphemeral is used when the user did not tick "remember me";
	// the session cookie is dropped when the browser closes.
	SessionEphemeral SessionDuration = "ephemeral"

	// SessionPersistent keeps the user signed in across browser restarts.
	SessionPersistent SessionDuration = "persistent"
)

// TTL returns the session lifetime carried by the duration choice.
func (d SessionDuration) TTL() time.Duration {
	if d == SessionPersistent {
		return 30 * 24 * time.Hour
	}

	return 24 * time.Hour
}

// MagicLink is a short-lived, single-email sign-in credential. The token is
// only ever sent to the owner's mailbox; the row id travels back in a signed
// cookie so redemption can pair the two.
type MagicLink struct {
	ID              uuid.UUID       // The unique identifier, carried by the identifier cookie.
	UserID          uuid.UUID       // The account this link signs in.
	Token           string          // Base64url encoding of 32 random bytes.
	SessionDuration SessionDuration // Lifetime of the session issued on redemption.
	ValidUntil      time.Time       // Absolute expiry; the link is dead after this instant.
	CreatedAt       time.Time
}

// Expired reports whether the link is past its validity window.
func (ml *MagicLink) Expired(now time.Time) bool {
	return now.After(ml.ValidUntil)
}
