package handler

import (
	"log/slog"
	"net/http"

	"planotes/config"
	"planotes/internal/delivery/http/cookies"
	"planotes/internal/delivery/http/response"
	"planotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for account-level handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, cfg *config.Config, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, cfg: cfg, logger: logger}
}

// Get returns the signed-in user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

type updateProfileRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	AvatarSeed string `json:"avatarSeed" validate:"required,max=100"`
	Timezone   string `json:"timezone" validate:"required,max=64"`
}

// Update sets the onboarding/profile fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:     userID,
		Name:       req.Name,
		AvatarSeed: req.AvatarSeed,
		Timezone:   req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// Delete removes the account and everything it owns, then clears the session.
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	cookies.Clear(c, h.cfg.App, cookies.Session)

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
