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

// noteRepository implements the domain.NoteRepository interface using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves a note scoped by its owner. A foreign note id yields the
// same not-found error as a missing one.
func (repo *noteRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&noteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// ListByUser returns a newest-first page of the user's notes with the total count.
func (repo *noteRepository) ListByUser(ctx context.Context, userID uuid.UUID, page repository.Page) (*repository.Paged[*entity.Note], error) {
	page = page.Normalize()

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notes")
	}

	var rows []*model.NoteModel
	err = repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	notes := make([]*entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, toNoteDomain(row))
	}

	return &repository.Paged[*entity.Note]{
		Items:  notes,
		Total:  total,
		Number: page.Number,
		Size:   page.Size,
	}, nil
}

// Update modifies an existing note.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Save(noteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update note")
	}

	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// Delete removes a note scoped by its owner.
func (repo *noteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		ContentHTML:  data.ContentHTML,
		ContentText:  data.ContentText,
		ContentChars: data.ContentChars,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		ContentHTML:  data.ContentHTML,
		ContentText:  data.ContentText,
		ContentChars: data.ContentChars,
		CreatedAt:    data.CreatedAt,
	}
}
