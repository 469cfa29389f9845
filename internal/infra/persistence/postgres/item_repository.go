package postgres

import (
	"context"

	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the domain.ItemRepository interface using GORM.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new shop item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves an item scoped by its owner.
func (repo *itemRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// ListByUser returns a newest-first page of the user's items with the total count.
func (repo *itemRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.Page) (*repository.Paged[*entity.Item], error) {
	page = page.Normalize()

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	var rows []*model.ItemModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItemDomain(row))
	}

	return &repository.Paged[*entity.Item]{
		Items:  items,
		Total:  total,
		Number: page.Number,
		Size:   page.Size,
	}, nil
}

// Update modifies an existing item.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes an item scoped by its owner.
func (repo *itemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Price:     data.Price,
		Type:      entity.ItemType(data.Type),
		Status:    entity.ItemStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Price:     data.Price,
		Type:      string(data.Type),
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
	}
}
