package repository

import (
	"context"

	"planotes/internal/domain/entity"
	"planotes/internal/errors"

	"github.com/google/uuid"
)

// ErrMagicLinkNotFound is returned when no magic link matches the lookup.
var ErrMagicLinkNotFound = errors.New("magic link not found")

// MagicLinkRepository persists MagicLink rows.
type MagicLinkRepository interface {
	Create(ctx context.Context, link *entity.MagicLink) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MagicLink, error)

	// FindLatestByUserID returns the most recently created link for the user
	// regardless of expiry; the caller decides whether it still blocks
	// regeneration.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.MagicLink, error)

	// Delete removes a link row, used to roll back after a failed email send.
	Delete(ctx context.Context, id uuid.UUID) error
}
