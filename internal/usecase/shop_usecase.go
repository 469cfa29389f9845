package usecase

import (
	"context"

	"github.com/google/uuid"

	"planotes/internal/domain/entity"
	"planotes/internal/domain/repository"
)

// --- Input DTOs ---

// CreateItemInput defines the data required to create a shop item.
type CreateItemInput struct {
	UserID uuid.UUID
	Name   string
	Price  int
	Type   entity.ItemType
}

// UpdateItemInput defines the editable fields of a shop item.
type UpdateItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Name   string
	Price  int
	Type   entity.ItemType
	Status entity.ItemStatus
}

// ListItemsInput defines the paging parameters for listing items.
type ListItemsInput struct {
	UserID uuid.UUID
	Page   repository.Page
}

// BalanceHistoryInput defines the paging parameters for the ledger.
type BalanceHistoryInput struct {
	UserID uuid.UUID
	Page   repository.Page
}

// --- Output DTOs ---

// PurchaseOutput carries the purchased item and the balance after the spend.
type PurchaseOutput struct {
	Item    *entity.Item
	Balance int
}

// ShopUsecase defines the interface for shop and ledger operations.
type ShopUsecase interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error)
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Item, error)
	ListItems(ctx context.Context, input ListItemsInput) (*repository.Paged[*entity.Item], error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Purchase spends balance on an available item. The ledger entry, the
	// balance decrement and (for one-time items) the availability flip
	// commit atomically.
	Purchase(ctx context.Context, userID, itemID uuid.UUID) (*PurchaseOutput, error)

	// BalanceHistory returns a newest-first ledger page.
	BalanceHistory(ctx context.Context, input BalanceHistoryInput) (*repository.Paged[*entity.BalanceEntry], error)
}
