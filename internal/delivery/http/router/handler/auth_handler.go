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

// AuthHandler holds dependencies for the magic-link sign-in handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

type signInRequest struct {
	Email      string `json:"email" validate:"required,email"`
	RememberMe bool   `json:"rememberMe"`
}

// SignIn handles a magic link request. The response is the same whether the
// account existed before or was just created.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RequestMagicLink(c.Request().Context(), usecase.RequestMagicLinkInput{
		Email:      req.Email,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	cookies.SetLink(c, h.cfg.App, output.LinkCookie, output.ValidUntil)

	return response.Success(c, http.StatusAccepted, nil, "Sign-in link sent, check your inbox")
}

type redeemRequest struct {
	Token string `json:"token" validate:"required"`
}

// Redeem handles the link redemption request. The identifier cookie set at
// request time must accompany the emailed token.
func (h *AuthHandler) Redeem(c echo.Context) error {
	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	linkCookie := ""
	if cookie, err := c.Cookie(cookies.Link); err == nil {
		linkCookie = cookie.Value
	}

	output, err := h.uc.RedeemMagicLink(c.Request().Context(), usecase.RedeemMagicLinkInput{
		Token:      req.Token,
		LinkCookie: linkCookie,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	cookies.Clear(c, h.cfg.App, cookies.Link)
	cookies.SetSession(c, h.cfg.App, output.SessionCookie, output.ValidUntil, output.Persistent)

	return response.Success(c, http.StatusOK, output.User, "Signed in successfully")
}

// SignOut clears the session cookie. The token is stateless so there is
// nothing to revoke server side.
func (h *AuthHandler) SignOut(c echo.Context) error {
	cookies.Clear(c, h.cfg.App, cookies.Session)

	return response.Success(c, http.StatusOK, nil, "Signed out")
}
