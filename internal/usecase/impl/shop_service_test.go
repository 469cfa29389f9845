package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	mockRepo "planotes/internal/mocks/repository"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service          usecase.ShopUsecase
	txManager        *mockRepo.MockTransactionManager
	itemRepo         *mockRepo.MockItemRepository
	balanceEntryRepo *mockRepo.MockBalanceEntryRepository
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	balanceEntryRepo := mockRepo.NewMockBalanceEntryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewShopService(ShopServiceParams{
		TxManager:        txManager,
		ItemRepo:         itemRepo,
		BalanceEntryRepo: balanceEntryRepo,
		Logger:           logger,
	})

	return shopServiceFixtures{
		service:          service,
		txManager:        txManager,
		itemRepo:         itemRepo,
		balanceEntryRepo: balanceEntryRepo,
	}
}

func TestShopService_CreateItem_AvailableByDefault(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.CreateItem(ctx, usecase.CreateItemInput{
		UserID: userID,
		Name:   "Movie night",
		Price:  150,
		Type:   entity.ItemRecurring,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ItemAvailable, item.Status)
	assert.Equal(t, 150, item.Price)
}

func TestShopService_GetItem_NotFoundMasksOwnership(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().
		FindByID(ctx, userID, itemID).
		Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.GetItem(ctx, userID, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestShopService_Purchase_RecurringItemStaysAvailable(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.Item{
		ID:     itemID,
		UserID: userID,
		Name:   "Movie night",
		Price:  150,
		Type:   entity.ItemRecurring,
		Status: entity.ItemAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockItemRepo := mockRepo.NewMockItemRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBalanceEntryRepo := mockRepo.NewMockBalanceEntryRepository(t)

			mockFactory.EXPECT().ItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BalanceEntryRepo().Return(mockBalanceEntryRepo)

			// No item Update expectation: recurring items stay in the shop.
			mockItemRepo.EXPECT().FindByID(ctx, userID, itemID).Return(item, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Balance: 500}, nil)
			mockBalanceEntryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BalanceEntry")).
				Run(func(ctx context.Context, entry *entity.BalanceEntry) {
					assert.Equal(t, -150, entry.Amount)
					assert.Equal(t, itemID, entry.EntityID)
					assert.Equal(t, entity.LedgerItem, entry.EntityType)
				}).
				Return(nil)
			mockUserRepo.EXPECT().AddToBalance(ctx, userID, -150).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Purchase(ctx, userID, itemID)

	require.NoError(t, err)
	assert.Equal(t, 350, output.Balance)
	assert.Equal(t, entity.ItemAvailable, output.Item.Status)
}

func TestShopService_Purchase_OneTimeItemRetires(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.Item{
		ID:     itemID,
		UserID: userID,
		Name:   "New headphones",
		Price:  400,
		Type:   entity.ItemOneTime,
		Status: entity.ItemAvailable,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockItemRepo := mockRepo.NewMockItemRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBalanceEntryRepo := mockRepo.NewMockBalanceEntryRepository(t)

			mockFactory.EXPECT().ItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().BalanceEntryRepo().Return(mockBalanceEntryRepo)

			mockItemRepo.EXPECT().FindByID(ctx, userID, itemID).Return(item, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Balance: 400}, nil)
			mockBalanceEntryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BalanceEntry")).
				Return(nil)
			mockUserRepo.EXPECT().AddToBalance(ctx, userID, -400).Return(nil)
			mockItemRepo.EXPECT().Update(ctx, item).Return(nil)

			_ = fn(mockFactory)

			assert.Equal(t, entity.ItemUnavailable, item.Status)
		}).
		Return(nil)

	output, err := fx.service.Purchase(ctx, userID, itemID)

	require.NoError(t, err)
	assert.Zero(t, output.Balance)
}

func TestShopService_Purchase_InsufficientBalance(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockItemRepo := mockRepo.NewMockItemRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockItemRepo.EXPECT().FindByID(ctx, userID, itemID).
				Return(&entity.Item{
					ID:     itemID,
					UserID: userID,
					Price:  400,
					Type:   entity.ItemOneTime,
					Status: entity.ItemAvailable,
				}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Balance: 399}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInsufficientBalance)

	_, err := fx.service.Purchase(ctx, userID, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
}

func TestShopService_Purchase_UnavailableItem(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockItemRepo := mockRepo.NewMockItemRepository(t)

			mockFactory.EXPECT().ItemRepo().Return(mockItemRepo)

			mockItemRepo.EXPECT().FindByID(ctx, userID, itemID).
				Return(&entity.Item{
					ID:     itemID,
					UserID: userID,
					Price:  50,
					Type:   entity.ItemOneTime,
					Status: entity.ItemUnavailable,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrItemUnavailable)

	_, err := fx.service.Purchase(ctx, userID, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrItemUnavailable))
}

func TestShopService_BalanceHistory(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &repository.Paged[*entity.BalanceEntry]{
		Items:  []*entity.BalanceEntry{{ID: uuid.New(), Amount: 100}},
		Total:  1,
		Number: 1,
		Size:   20,
	}

	fx.balanceEntryRepo.EXPECT().
		ListByUser(ctx, userID, repository.Page{Number: 1, Size: 20}).
		Return(expected, nil)

	page, err := fx.service.BalanceHistory(ctx, usecase.BalanceHistoryInput{
		UserID: userID,
		Page:   repository.Page{Number: 1, Size: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, expected, page)
}
