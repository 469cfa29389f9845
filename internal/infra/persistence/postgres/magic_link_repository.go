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

// magicLinkRepository implements the domain.MagicLinkRepository interface using GORM.
type magicLinkRepository struct {
	db *gorm.DB
}

// NewMagicLinkRepository is the constructor for magicLinkRepository.
func NewMagicLinkRepository(db *gorm.DB) repository.MagicLinkRepository {
	return &magicLinkRepository{db: db}
}

// Create persists a new magic link row.
func (repo *magicLinkRepository) Create(ctx context.Context, link *entity.MagicLink) error {
	linkM := fromMagicLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create magic link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindByID retrieves a magic link by its unique ID.
func (repo *magicLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MagicLink, error) {
	var linkM model.MagicLinkModel
	if err := repo.db.WithContext(ctx).First(&linkM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMagicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find magic link by id")
	}

	return toMagicLinkDomain(&linkM), nil
}

// FindLatestByUserID retrieves the most recently created link for the user.
func (repo *magicLinkRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.MagicLink, error) {
	var linkM model.MagicLinkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMagicLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest magic link")
	}

	return toMagicLinkDomain(&linkM), nil
}

// Delete removes a magic link row.
func (repo *magicLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MagicLinkModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete magic link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMagicLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMagicLinkDomain(data *model.MagicLinkModel) *entity.MagicLink {
	if data == nil {
		return nil
	}

	return &entity.MagicLink{
		ID:              data.ID,
		UserID:          data.UserID,
		Token:           data.Token,
		SessionDuration: entity.SessionDuration(data.SessionDuration),
		ValidUntil:      data.ValidUntil,
		CreatedAt:       data.CreatedAt,
	}
}

func fromMagicLinkDomain(data *entity.MagicLink) *model.MagicLinkModel {
	if data == nil {
		return nil
	}

	return &model.MagicLinkModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Token:           data.Token,
		SessionDuration: string(data.SessionDuration),
		ValidUntil:      data.ValidUntil,
		CreatedAt:       data.CreatedAt,
	}
}
