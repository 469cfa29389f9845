package usecase

import (
	"context"

	"github.com/google/uuid"

	"planotes/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines the onboarding/profile fields a user can set.
type UpdateProfileInput struct {
	UserID     uuid.UUID
	Name       string
	AvatarSeed string
	Timezone   string
}

// ProfileUsecase defines the interface for account-level operations.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// DeleteAccount removes the user and everything they own in one
	// transaction; cascading foreign keys take the owned rows.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
