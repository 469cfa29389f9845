package middleware

import (
	"net/http"
	"strings"

	"planotes/config"
	"planotes/internal/delivery/http/cookies"
	"planotes/internal/delivery/http/response"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where the authenticated user id is stored on echo.Context.
const ContextKeyUserID = "userID"

// SessionMiddleware guards routes behind a valid session cookie.
type SessionMiddleware struct {
	authUsecase usecase.AuthUsecase
	cfg         *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUsecase usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{authUsecase: authUsecase, cfg: cfg}
}

// RequireUser validates the session cookie and stores the user id on the
// context. An absent, invalid or expired session clears the cookie and sends
// HTML clients to the sign-in page; API clients get a plain 401.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(cookies.Session)
		if err != nil || cookie.Value == "" {
			return m.reject(c)
		}

		userID, err := m.authUsecase.VerifySession(c.Request().Context(), cookie.Value)
		if err != nil {
			return m.reject(c)
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// UserID extracts the authenticated user id set by RequireUser.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

func (m *SessionMiddleware) reject(c echo.Context) error {
	cookies.Clear(c, m.cfg.App, cookies.Session)

	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}

	return response.Unauthorized(c, "UNAUTHENTICATED", "Please sign in to continue")
}

// wantsHTML reports whether the client is a browser navigation rather than an
// API call.
func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMETextHTML)
}
