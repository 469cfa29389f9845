package handler

import (
	"net/http"

	"planotes/config"
	"planotes/internal/delivery/http/cookies"
	"planotes/internal/delivery/http/response"
	"planotes/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler manages the cookie-backed UI preferences.
type PreferenceHandler struct {
	cfg *config.Config
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(cfg *config.Config) *PreferenceHandler {
	return &PreferenceHandler{cfg: cfg}
}

type colorSchemeRequest struct {
	Scheme string `json:"scheme" validate:"required,oneof=DARK LIGHT SYSTEM"`
}

// SetColorScheme stores the theme preference in a plain cookie. The route is
// public so the theme survives sign-out.
func (h *PreferenceHandler) SetColorScheme(c echo.Context) error {
	var req colorSchemeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid color scheme input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	scheme := entity.ColorScheme(req.Scheme)
	if !scheme.Valid() {
		return response.BindingError(c, "INVALID_INPUT", "Unknown color scheme")
	}

	cookies.SetColorScheme(c, h.cfg.App, string(scheme))

	return response.Success(c, http.StatusOK, nil, "Color scheme saved")
}
