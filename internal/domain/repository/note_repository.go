package repository

import (
	"context"

	"planotes/internal/domain/entity"
	"planotes/internal/errors"

	"github.com/google/uuid"
)

// ErrNoteNotFound is returned when no note matches the lookup. Lookups are
// always scoped by owner, so a foreign note id yields the same error as a
// missing one.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository persists Note entities. Every method is scoped by the owning
// user id.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*Paged[*entity.Note], error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
