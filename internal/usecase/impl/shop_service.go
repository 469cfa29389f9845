package impl

import (
	"context"
	"log/slog"

	deliverycontext "planotes/internal/delivery/context"
	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager        repository.TransactionManager
	itemRepo         repository.ItemRepository
	balanceEntryRepo repository.BalanceEntryRepository
	logger           *slog.Logger
}

// ShopServiceParams holds dependencies for shopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ItemRepo         repository.ItemRepository
	BalanceEntryRepo repository.BalanceEntryRepository
	Logger           *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:        params.TxManager,
		itemRepo:         params.ItemRepo,
		balanceEntryRepo: params.BalanceEntryRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem persists a new shop item, available by default.
func (srv *shopService) CreateItem(ctx context.Context, input usecase.CreateItemInput) (*entity.Item, error) {
	item := &entity.Item{
		UserID: input.UserID,
		Name:   input.Name,
		Price:  input.Price,
		Type:   input.Type,
		Status: entity.ItemAvailable,
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create item", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create item")
	}
	srv.log(ctx).Debug("Item created", slog.Any("itemID", item.ID))

	return item, nil
}

// GetItem retrieves an item scoped by its owner.
func (srv *shopService) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load item")
	}

	return item, nil
}

// ListItems returns a paginated page of the user's items.
func (srv *shopService) ListItems(ctx context.Context, input usecase.ListItemsInput) (*repository.Paged[*entity.Item], error) {
	page, err := srv.itemRepo.ListByUser(ctx, input.UserID, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return page, nil
}

// UpdateItem modifies an existing item.
func (srv *shopService) UpdateItem(ctx context.Context, input usecase.UpdateItemInput) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, input.UserID, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load item for update")
	}

	item.Name = input.Name
	item.Price = input.Price
	item.Type = input.Type
	item.Status = input.Status

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update item", slog.Any("itemID", item.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update item")
	}

	return item, nil
}

// DeleteItem removes an item scoped by its owner.
func (srv *shopService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.itemRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete item")
	}
	srv.log(ctx).Debug("Item deleted", slog.Any("itemID", itemID))

	return nil
}

// Purchase spends balance on an available item. The ledger entry, the balance
// decrement and the availability flip for one-time items commit atomically.
func (srv *shopService) Purchase(ctx context.Context, userID, itemID uuid.UUID) (*usecase.PurchaseOutput, error) {
	srv.log(ctx).Info("Purchase requested", slog.Any("itemID", itemID))

	var output *usecase.PurchaseOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.ItemRepo()

		item, err := itemRepo.FindByID(ctx, userID, itemID)
		if err != nil {
			if errors.Is(err, repository.ErrItemNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load item for purchase")
		}
		if !item.Purchasable() {
			return domainerrors.ErrItemUnavailable
		}

		userRepo := repoFactory.UserRepo()

		buyer, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load buyer")
		}
		if buyer.Balance < item.Price {
			return domainerrors.ErrInsufficientBalance
		}

		entry := &entity.BalanceEntry{
			UserID:     userID,
			Amount:     -item.Price,
			EntityID:   item.ID,
			EntityType: entity.LedgerItem,
		}
		if err := repoFactory.BalanceEntryRepo().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record purchase")
		}

		if err := userRepo.AddToBalance(ctx, userID, -item.Price); err != nil {
			return errors.Wrap(err, "failed to debit balance")
		}

		// One-time items leave the shop with their first purchase.
		if item.Type == entity.ItemOneTime {
			item.Status = entity.ItemUnavailable
			if err := itemRepo.Update(ctx, item); err != nil {
				return errors.Wrap(err, "failed to retire one-time item")
			}
		}

		output = &usecase.PurchaseOutput{Item: item, Balance: buyer.Balance - item.Price}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Purchase rejected", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Purchase completed", slog.Any("itemID", itemID), slog.Int("balance", output.Balance))

	return output, nil
}

// BalanceHistory returns a newest-first ledger page.
func (srv *shopService) BalanceHistory(ctx context.Context, input usecase.BalanceHistoryInput) (*repository.Paged[*entity.BalanceEntry], error) {
	page, err := srv.balanceEntryRepo.ListByUser(ctx, input.UserID, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list balance entries")
	}

	return page, nil
}
