package repository

import (
	"context"

	"planotes/internal/domain/entity"
	"planotes/internal/errors"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when no item matches the lookup. Lookups are
// always scoped by owner, so a foreign item id yields the same error as a
// missing one.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository persists shop items. Every method is scoped by the owning
// user id.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*Paged[*entity.Item], error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
