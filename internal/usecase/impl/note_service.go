package impl

import (
	"context"
	"log/slog"

	deliverycontext "planotes/internal/delivery/context"
	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/usecase"
	"planotes/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	txManager repository.TransactionManager
	noteRepo  repository.NoteRepository
	logger    *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NoteRepo  repository.NoteRepository
	Logger    *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		txManager: params.TxManager,
		noteRepo:  params.NoteRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new note, deriving the plain text and character count
// from the rich-text content.
func (srv *noteService) Create(ctx context.Context, input usecase.CreateNoteInput) (*entity.Note, error) {
	contentText := util.StripHTML(input.ContentHTML)
	note := &entity.Note{
		UserID:       input.UserID,
		Title:        input.Title,
		ContentHTML:  input.ContentHTML,
		ContentText:  contentText,
		ContentChars: util.CountChars(contentText),
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to create note", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}
	srv.log(ctx).Debug("Note created", slog.Any("noteID", note.ID))

	return note, nil
}

// Get retrieves a note scoped by its owner.
func (srv *noteService) Get(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, userID, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load note")
	}

	return note, nil
}

// List returns a paginated page of the user's notes.
func (srv *noteService) List(ctx context.Context, input usecase.ListNotesInput) (*repository.Paged[*entity.Note], error) {
	page, err := srv.noteRepo.ListByUser(ctx, input.UserID, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return page, nil
}

// Update modifies a note, rederiving the plain text fields.
func (srv *noteService) Update(ctx context.Context, input usecase.UpdateNoteInput) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, input.UserID, input.NoteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load note for update")
	}

	contentText := util.StripHTML(input.ContentHTML)
	note.Title = input.Title
	note.ContentHTML = input.ContentHTML
	note.ContentText = contentText
	note.ContentChars = util.CountChars(contentText)

	if err := srv.noteRepo.Update(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to update note", slog.Any("noteID", note.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update note")
	}

	return note, nil
}

// Delete removes a note scoped by its owner.
func (srv *noteService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if err := srv.noteRepo.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete note")
	}
	srv.log(ctx).Debug("Note deleted", slog.Any("noteID", noteID))

	return nil
}

// Convert creates a completable from the note's content and deletes the note.
// Both writes commit in one transaction so the note can never be lost without
// its replacement existing.
func (srv *noteService) Convert(ctx context.Context, input usecase.ConvertNoteInput) (*entity.Completable, error) {
	srv.log(ctx).Info("Converting note",
		slog.Any("noteID", input.NoteID),
		slog.String("kind", string(input.Kind)),
	)

	var completable *entity.Completable
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		noteRepo := repoFactory.NoteRepo()

		note, err := noteRepo.FindByID(ctx, input.UserID, input.NoteID)
		if err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load note for conversion")
		}

		completable = &entity.Completable{
			UserID:       note.UserID,
			Kind:         input.Kind,
			Title:        note.Title,
			ContentHTML:  note.ContentHTML,
			ContentText:  note.ContentText,
			ContentChars: note.ContentChars,
			Size:         input.Size,
			Priority:     input.Priority,
			Status:       entity.StatusToDo,
		}
		if err := repoFactory.CompletableRepo().Create(ctx, completable); err != nil {
			return errors.Wrap(err, "failed to create completable from note")
		}

		if err := noteRepo.Delete(ctx, input.UserID, input.NoteID); err != nil {
			return errors.Wrap(err, "failed to remove converted note")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Note conversion failed", slog.Any("noteID", input.NoteID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Note converted", slog.Any("noteID", input.NoteID), slog.Any("completableID", completable.ID))

	return completable, nil
}
