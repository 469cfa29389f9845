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

// completableRepository implements the domain.CompletableRepository interface using GORM.
type completableRepository struct {
	db *gorm.DB
}

// NewCompletableRepository is the constructor for completableRepository.
func NewCompletableRepository(db *gorm.DB) repository.CompletableRepository {
	return &completableRepository{db: db}
}

// Create persists a new completable.
func (repo *completableRepository) Create(ctx context.Context, completable *entity.Completable) error {
	completableM := fromCompletableDomain(completable)

	if err := repo.db.WithContext(ctx).Create(completableM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// Either the user or the linked goal is gone.
			return repository.ErrCompletableNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create completable")
	}

	completable.ID = completableM.ID
	completable.CreatedAt = completableM.CreatedAt
	completable.UpdatedAt = completableM.UpdatedAt

	return nil
}

// FindByID retrieves a completable scoped by its owner.
func (repo *completableRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Completable, error) {
	var completableM model.CompletableModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&completableM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompletableNotFound
		}

		return nil, errors.Wrap(err, "failed to find completable by id")
	}

	return toCompletableDomain(&completableM), nil
}

// ListByUser returns a newest-first page of the user's completables, narrowed
// by the optional kind and status filters.
func (repo *completableRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.CompletableFilter, page repository.Page) (*repository.Paged[*entity.Completable], error) {
	page = page.Normalize()

	scope := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", userID)
		if filter.Kind != nil {
			tx = tx.Where("kind = ?", string(*filter.Kind))
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", string(*filter.Status))
		}

		return tx
	}

	var total int64
	err := scope(repo.db.WithContext(ctx).Model(&model.CompletableModel{})).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completables")
	}

	var rows []*model.CompletableModel
	err = scope(repo.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completables")
	}

	completables := make([]*entity.Completable, 0, len(rows))
	for _, row := range rows {
		completables = append(completables, toCompletableDomain(row))
	}

	return &repository.Paged[*entity.Completable]{
		Items:  completables,
		Total:  total,
		Number: page.Number,
		Size:   page.Size,
	}, nil
}

// Update modifies an existing completable.
func (repo *completableRepository) Update(ctx context.Context, completable *entity.Completable) error {
	completableM := fromCompletableDomain(completable)

	if err := repo.db.WithContext(ctx).Save(completableM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update completable")
	}

	completable.UpdatedAt = completableM.UpdatedAt

	return nil
}

// Delete removes a completable scoped by its owner.
func (repo *completableRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.CompletableModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete completable")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompletableNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCompletableDomain(data *model.CompletableModel) *entity.Completable {
	if data == nil {
		return nil
	}

	return &entity.Completable{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         entity.CompletableKind(data.Kind),
		Title:        data.Title,
		ContentHTML:  data.ContentHTML,
		ContentText:  data.ContentText,
		ContentChars: data.ContentChars,
		Size:         entity.Size(data.Size),
		Priority:     entity.Priority(data.Priority),
		Status:       entity.Status(data.Status),
		GoalID:       data.GoalID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCompletableDomain(data *entity.Completable) *model.CompletableModel {
	if data == nil {
		return nil
	}

	return &model.CompletableModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         string(data.Kind),
		Title:        data.Title,
		ContentHTML:  data.ContentHTML,
		ContentText:  data.ContentText,
		ContentChars: data.ContentChars,
		Size:         string(data.Size),
		Priority:     string(data.Priority),
		Status:       string(data.Status),
		GoalID:       data.GoalID,
		CreatedAt:    data.CreatedAt,
	}
}
