package handler

import (
	"log/slog"
	"net/http"

	"planotes/internal/delivery/http/response"
	"planotes/internal/domain/entity"
	"planotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoteHandler holds dependencies for note handlers.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{uc: uc, logger: logger}
}

type noteRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	ContentHTML string `json:"contentHtml"`
}

// Create handles note creation.
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.uc.Create(c.Request().Context(), usecase.CreateNoteInput{
		UserID:      userID,
		Title:       req.Title,
		ContentHTML: req.ContentHTML,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note, "Note created")
}

// Get returns a single note.
func (h *NoteHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	note, err := h.uc.Get(c.Request().Context(), userID, noteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "")
}

// List returns a page of the user's notes.
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), usecase.ListNotesInput{
		UserID: userID,
		Page:   pageFromQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pagedResponse(page), "")
}

// Update handles note edits.
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	note, err := h.uc.Update(c.Request().Context(), usecase.UpdateNoteInput{
		UserID:      userID,
		NoteID:      noteID,
		Title:       req.Title,
		ContentHTML: req.ContentHTML,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "Note updated")
}

// Delete removes a note.
func (h *NoteHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, noteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted")
}

type convertNoteRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=goal task"`
	Size     string `json:"size" validate:"required,oneof=xs s m l xl"`
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

// Convert turns a note into a goal or task and removes the note.
func (h *NoteHandler) Convert(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req convertNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	completable, err := h.uc.Convert(c.Request().Context(), usecase.ConvertNoteInput{
		UserID:   userID,
		NoteID:   noteID,
		Kind:     entity.CompletableKind(req.Kind),
		Size:     entity.Size(req.Size),
		Priority: entity.Priority(req.Priority),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, completable, "Note converted")
}
