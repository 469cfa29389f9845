package handler

import (
	"log/slog"
	"net/http"

	"planotes/internal/delivery/http/response"
	"planotes/internal/domain/entity"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompletableHandler holds dependencies for goal and task handlers.
type CompletableHandler struct {
	uc     usecase.CompletableUsecase
	logger *slog.Logger
}

// NewCompletableHandler is the constructor for CompletableHandler, injected by Fx.
func NewCompletableHandler(uc usecase.CompletableUsecase, logger *slog.Logger) *CompletableHandler {
	return &CompletableHandler{uc: uc, logger: logger}
}

type createCompletableRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=goal task"`
	Title       string  `json:"title" validate:"required,max=255"`
	ContentHTML string  `json:"contentHtml"`
	Size        string  `json:"size" validate:"required,oneof=xs s m l xl"`
	Priority    string  `json:"priority" validate:"required,oneof=low medium high"`
	GoalID      *string `json:"goalId" validate:"omitempty,uuid"`
}

type updateCompletableRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	ContentHTML string  `json:"contentHtml"`
	Size        string  `json:"size" validate:"required,oneof=xs s m l xl"`
	Priority    string  `json:"priority" validate:"required,oneof=low medium high"`
	GoalID      *string `json:"goalId" validate:"omitempty,uuid"`
}

// Create handles goal/task creation.
func (h *CompletableHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createCompletableRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completable input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goalID, err := optionalUUID(req.GoalID)
	if err != nil {
		return err
	}

	completable, err := h.uc.Create(c.Request().Context(), usecase.CreateCompletableInput{
		UserID:      userID,
		Kind:        entity.CompletableKind(req.Kind),
		Title:       req.Title,
		ContentHTML: req.ContentHTML,
		Size:        entity.Size(req.Size),
		Priority:    entity.Priority(req.Priority),
		GoalID:      goalID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, completable, "Completable created")
}

// Get returns a single completable.
func (h *CompletableHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	completableID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	completable, err := h.uc.Get(c.Request().Context(), userID, completableID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, completable, "")
}

// List returns a page of the user's completables, optionally filtered by kind
// and status query parameters.
func (h *CompletableHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input := usecase.ListCompletablesInput{
		UserID: userID,
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("kind"); raw != "" {
		kind := entity.CompletableKind(raw)
		input.Kind = &kind
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.Status(raw)
		input.Status = &status
	}

	page, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pagedResponse(page), "")
}

// Update handles edits to the non-status fields.
func (h *CompletableHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	completableID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateCompletableRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completable input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goalID, err := optionalUUID(req.GoalID)
	if err != nil {
		return err
	}

	completable, err := h.uc.Update(c.Request().Context(), usecase.UpdateCompletableInput{
		UserID:        userID,
		CompletableID: completableID,
		Title:         req.Title,
		ContentHTML:   req.ContentHTML,
		Size:          entity.Size(req.Size),
		Priority:      entity.Priority(req.Priority),
		GoalID:        goalID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, completable, "Completable updated")
}

// Delete removes a completable.
func (h *CompletableHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	completableID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, completableID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Completable deleted")
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=to_do in_progress completed archived"`
}

// Transition applies a status move.
func (h *CompletableHandler) Transition(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	completableID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Transition(c.Request().Context(), usecase.TransitionInput{
		UserID:        userID,
		CompletableID: completableID,
		To:            entity.Status(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Status updated")
}

// optionalUUID parses an optional uuid string from a request body.
func optionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		// Validation tags catch this first; kept as a guard.
		return nil, errors.WithStack(err)
	}

	return &id, nil
}
