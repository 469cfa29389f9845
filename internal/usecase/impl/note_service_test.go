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

// noteServiceFixtures holds all test dependencies for note service tests.
type noteServiceFixtures struct {
	service   usecase.NoteUsecase
	txManager *mockRepo.MockTransactionManager
	noteRepo  *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	noteRepo := mockRepo.NewMockNoteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNoteService(NoteServiceParams{
		TxManager: txManager,
		NoteRepo:  noteRepo,
		Logger:    logger,
	})

	return noteServiceFixtures{
		service:   service,
		txManager: txManager,
		noteRepo:  noteRepo,
	}
}

func TestNoteService_Create_DerivesPlainText(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			note.ID = uuid.New()
		}).
		Return(nil)

	note, err := fx.service.Create(ctx, usecase.CreateNoteInput{
		UserID:      userID,
		Title:       "Reading list",
		ContentHTML: "<ul><li>Dune</li><li>Hyperion</li></ul>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dune Hyperion", note.ContentText)
	assert.Equal(t, 13, note.ContentChars)
}

func TestNoteService_Update_RederivesPlainText(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()
	existing := &entity.Note{
		ID:           noteID,
		UserID:       userID,
		Title:        "Reading list",
		ContentHTML:  "<p>Dune</p>",
		ContentText:  "Dune",
		ContentChars: 4,
	}

	fx.noteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(existing, nil)
	fx.noteRepo.EXPECT().Update(ctx, existing).Return(nil)

	note, err := fx.service.Update(ctx, usecase.UpdateNoteInput{
		UserID:      userID,
		NoteID:      noteID,
		Title:       "Watch list",
		ContentHTML: "<p>Alien</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Watch list", note.Title)
	assert.Equal(t, "Alien", note.ContentText)
	assert.Equal(t, 5, note.ContentChars)
}

func TestNoteService_Get_NotFoundMasksOwnership(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()

	fx.noteRepo.EXPECT().
		FindByID(ctx, userID, noteID).
		Return(nil, repository.ErrNoteNotFound)

	_, err := fx.service.Get(ctx, userID, noteID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNoteService_Convert_CreatesCompletableAndRemovesNote(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()
	note := &entity.Note{
		ID:           noteID,
		UserID:       userID,
		Title:        "Plan the trip",
		ContentHTML:  "<p>Book the flights</p>",
		ContentText:  "Book the flights",
		ContentChars: 16,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNoteRepo := mockRepo.NewMockNoteRepository(t)
			mockCompletableRepo := mockRepo.NewMockCompletableRepository(t)

			mockFactory.EXPECT().NoteRepo().Return(mockNoteRepo)
			mockFactory.EXPECT().CompletableRepo().Return(mockCompletableRepo)

			mockNoteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(note, nil)
			mockCompletableRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Completable")).
				Run(func(ctx context.Context, completable *entity.Completable) {
					completable.ID = uuid.New()
				}).
				Return(nil)
			mockNoteRepo.EXPECT().Delete(ctx, userID, noteID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	completable, err := fx.service.Convert(ctx, usecase.ConvertNoteInput{
		UserID:   userID,
		NoteID:   noteID,
		Kind:     entity.KindTask,
		Size:     entity.SizeS,
		Priority: entity.PriorityMedium,
	})

	require.NoError(t, err)
	assert.Equal(t, "Plan the trip", completable.Title)
	assert.Equal(t, "Book the flights", completable.ContentText)
	assert.Equal(t, entity.StatusToDo, completable.Status)
	assert.Equal(t, entity.KindTask, completable.Kind)
}

func TestNoteService_Convert_NotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNoteRepo := mockRepo.NewMockNoteRepository(t)

			mockFactory.EXPECT().NoteRepo().Return(mockNoteRepo)
			mockNoteRepo.EXPECT().FindByID(ctx, userID, noteID).
				Return(nil, repository.ErrNoteNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound)

	_, err := fx.service.Convert(ctx, usecase.ConvertNoteInput{
		UserID:   userID,
		NoteID:   noteID,
		Kind:     entity.KindGoal,
		Size:     entity.SizeXL,
		Priority: entity.PriorityHigh,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNoteService_Delete_NotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()

	fx.noteRepo.EXPECT().
		Delete(ctx, userID, noteID).
		Return(repository.ErrNoteNotFound)

	err := fx.service.Delete(ctx, userID, noteID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
