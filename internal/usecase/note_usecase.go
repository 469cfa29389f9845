package usecase

import (
	"context"

	"github.com/google/uuid"

	"planotes/internal/domain/entity"
	"planotes/internal/domain/repository"
)

// --- Input DTOs ---

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	UserID      uuid.UUID
	Title       string
	ContentHTML string
}

// UpdateNoteInput defines the data required to update a note.
type UpdateNoteInput struct {
	UserID      uuid.UUID
	NoteID      uuid.UUID
	Title       string
	ContentHTML string
}

// ListNotesInput defines the paging parameters for listing notes.
type ListNotesInput struct {
	UserID uuid.UUID
	Page   repository.Page
}

// ConvertNoteInput defines the data required to turn a note into a
// completable. The note's title and content carry over; kind, size and
// priority are chosen at conversion time.
type ConvertNoteInput struct {
	UserID   uuid.UUID
	NoteID   uuid.UUID
	Kind     entity.CompletableKind
	Size     entity.Size
	Priority entity.Priority
}

// NoteUsecase defines the interface for note-related business operations.
type NoteUsecase interface {
	Create(ctx context.Context, input CreateNoteInput) (*entity.Note, error)
	Get(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error)
	List(ctx context.Context, input ListNotesInput) (*repository.Paged[*entity.Note], error)
	Update(ctx context.Context, input UpdateNoteInput) (*entity.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error

	// Convert creates a completable from the note and deletes the note, both
	// in one transaction.
	Convert(ctx context.Context, input ConvertNoteInput) (*entity.Completable, error)
}
