package service

import (
	"context"
	"time"
)

// Mailer delivers transactional mail. The only message the application sends
// is the magic-link sign-in email.
type Mailer interface {
	// SendMagicLink emails the sign-in URL for the given token.
	SendMagicLink(ctx context.Context, to, token string, validFor time.Duration) error

	// Ping verifies the transport is reachable, used by the health check.
	Ping(ctx context.Context) error
}
