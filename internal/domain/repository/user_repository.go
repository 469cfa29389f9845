// Package repository defines the persistence contracts the use case layer
// depends on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"planotes/internal/domain/entity"
	"planotes/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists User entities.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error

	// AddToBalance applies a signed delta to the stored balance in a single
	// statement, avoiding read-modify-write races between requests.
	AddToBalance(ctx context.Context, id uuid.UUID, delta int) error

	// Delete removes the user row. Owned rows (notes, completables, items,
	// magic links, balance entries) are removed by the cascading foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
}
