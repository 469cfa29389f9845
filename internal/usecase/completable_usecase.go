package usecase

import (
	"context"

	"github.com/google/uuid"

	"planotes/internal/domain/entity"
	"planotes/internal/domain/repository"
)

// --- Input DTOs ---

// CreateCompletableInput defines the data required to create a goal or task.
type CreateCompletableInput struct {
	UserID      uuid.UUID
	Kind        entity.CompletableKind
	Title       string
	ContentHTML string
	Size        entity.Size
	Priority    entity.Priority
	GoalID      *uuid.UUID // Optional parent goal, tasks only.
}

// UpdateCompletableInput defines the editable fields of a completable.
// Status is deliberately absent; status moves only through Transition.
type UpdateCompletableInput struct {
	UserID        uuid.UUID
	CompletableID uuid.UUID
	Title         string
	ContentHTML   string
	Size          entity.Size
	Priority      entity.Priority
	GoalID        *uuid.UUID
}

// ListCompletablesInput defines the filter and paging parameters for listing.
type ListCompletablesInput struct {
	UserID uuid.UUID
	Kind   *entity.CompletableKind
	Status *entity.Status
	Page   repository.Page
}

// TransitionInput defines a requested status move.
type TransitionInput struct {
	UserID        uuid.UUID
	CompletableID uuid.UUID
	To            entity.Status
}

// --- Output DTOs ---

// TransitionOutput carries the updated completable and, for completions, the
// payout credited to the user's balance.
type TransitionOutput struct {
	Completable *entity.Completable
	Payout      int
}

// CompletableUsecase defines the interface for goal and task operations.
type CompletableUsecase interface {
	Create(ctx context.Context, input CreateCompletableInput) (*entity.Completable, error)
	Get(ctx context.Context, userID, completableID uuid.UUID) (*entity.Completable, error)
	List(ctx context.Context, input ListCompletablesInput) (*repository.Paged[*entity.Completable], error)
	Update(ctx context.Context, input UpdateCompletableInput) (*entity.Completable, error)
	Delete(ctx context.Context, userID, completableID uuid.UUID) error

	// Transition applies a status move through the transition table. All side
	// effects (goal bump, payout, ledger entry) commit atomically.
	Transition(ctx context.Context, input TransitionInput) (*TransitionOutput, error)
}
