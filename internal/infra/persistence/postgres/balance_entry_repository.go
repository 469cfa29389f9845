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

// balanceEntryRepository implements the domain.BalanceEntryRepository interface using GORM.
type balanceEntryRepository struct {
	db *gorm.DB
}

// NewBalanceEntryRepository is the constructor for balanceEntryRepository.
func NewBalanceEntryRepository(db *gorm.DB) repository.BalanceEntryRepository {
	return &balanceEntryRepository{db: db}
}

// Create appends a ledger entry.
func (repo *balanceEntryRepository) Create(ctx context.Context, entry *entity.BalanceEntry) error {
	entryM := fromBalanceEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create balance entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByUser returns a newest-first ledger page for the user.
func (repo *balanceEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.Page) (*repository.Paged[*entity.BalanceEntry], error) {
	page = page.Normalize()

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.BalanceEntryModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count balance entries")
	}

	var rows []*model.BalanceEntryModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list balance entries")
	}

	entries := make([]*entity.BalanceEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toBalanceEntryDomain(row))
	}

	return &repository.Paged[*entity.BalanceEntry]{
		Items:  entries,
		Total:  total,
		Number: page.Number,
		Size:   page.Size,
	}, nil
}

// --- Mapper Functions ---

func toBalanceEntryDomain(data *model.BalanceEntryModel) *entity.BalanceEntry {
	if data == nil {
		return nil
	}

	return &entity.BalanceEntry{
		ID:         data.ID,
		UserID:     data.UserID,
		Amount:     data.Amount,
		EntityID:   data.EntityID,
		EntityType: entity.LedgerEntityType(data.EntityType),
		CreatedAt:  data.CreatedAt,
	}
}

func fromBalanceEntryDomain(data *entity.BalanceEntry) *model.BalanceEntryModel {
	if data == nil {
		return nil
	}

	return &model.BalanceEntryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Amount:     data.Amount,
		EntityID:   data.EntityID,
		EntityType: string(data.EntityType),
	}
}
