// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planotes/internal/domain/entity"
)

// --- Input DTOs ---

// RequestMagicLinkInput defines the data required to request a sign-in link.
type RequestMagicLinkInput struct {
	Email      string
	RememberMe bool
}

// RedeemMagicLinkInput defines the data required to redeem a sign-in link.
// LinkCookie is the signed identifier cookie issued alongside the email.
type RedeemMagicLinkInput struct {
	Token      string
	LinkCookie string
}

// --- Output DTOs ---

// RequestMagicLinkOutput carries the signed identifier cookie to set on the
// requesting browser. The token itself only travels by email.
type RequestMagicLinkOutput struct {
	LinkCookie string
	ValidUntil time.Time
}

// RedeemMagicLinkOutput carries the signed session cookie for a successful
// redemption.
type RedeemMagicLinkOutput struct {
	SessionCookie string
	ValidUntil    time.Time
	Persistent    bool
	User          *entity.User
}

// AuthUsecase defines the interface for the magic-link sign-in flow.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RequestMagicLink upserts the account for the email, persists a fresh
	// link and sends it. A live link created within the regeneration window
	// yields a rate-limit error instead.
	RequestMagicLink(ctx context.Context, input RequestMagicLinkInput) (*RequestMagicLinkOutput, error)

	// RedeemMagicLink exchanges an emailed token plus the identifier cookie
	// for a session. Any mismatch or expiry yields one generic error.
	RedeemMagicLink(ctx context.Context, input RedeemMagicLinkInput) (*RedeemMagicLinkOutput, error)

	// VerifySession validates a session cookie value and returns the user id.
	VerifySession(ctx context.Context, sessionCookie string) (uuid.UUID, error)
}
