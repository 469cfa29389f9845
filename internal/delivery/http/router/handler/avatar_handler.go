package handler

import (
	"net/http"

	"planotes/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AvatarHandler serves generated identicons.
type AvatarHandler struct {
	avatars service.AvatarService
}

// NewAvatarHandler is the constructor for AvatarHandler, injected by Fx.
func NewAvatarHandler(avatars service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

// Render returns the identicon for a seed. The route is public; a seed
// carries no secret and the same seed always produces the same image.
func (h *AvatarHandler) Render(c echo.Context) error {
	seed := c.Param("seed")

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/svg+xml", h.avatars.Render(seed))
}
