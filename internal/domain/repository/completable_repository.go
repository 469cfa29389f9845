package repository

import (
	"context"

	"planotes/internal/domain/entity"
	"planotes/internal/errors"

	"github.com/google/uuid"
)

// ErrCompletableNotFound is returned when no completable matches the lookup.
// Lookups are always scoped by owner, so a foreign id yields the same error
// as a missing one.
var ErrCompletableNotFound = errors.New("completable not found")

// CompletableFilter narrows list queries. Nil fields are ignored.
type CompletableFilter struct {
	Kind   *entity.CompletableKind
	Status *entity.Status
}

// CompletableRepository persists goals and tasks. Every method is scoped by
// the owning user id.
type CompletableRepository interface {
	Create(ctx context.Context, completable *entity.Completable) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Completable, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter CompletableFilter, page Page) (*Paged[*entity.Completable], error)
	Update(ctx context.Context, completable *entity.Completable) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
