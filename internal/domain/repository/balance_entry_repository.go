package repository

import (
	"context"

	"planotes/internal/domain/entity"

	"github.com/google/uuid"
)

// BalanceEntryRepository persists the append-only currency ledger. Entries
// are created and listed, never updated or deleted individually.
type BalanceEntryRepository interface {
	Create(ctx context.Context, entry *entity.BalanceEntry) error

	// ListByUser returns a newest-first ledger page for the user.
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) (*Paged[*entity.BalanceEntry], error)
}
