// Package cookies centralizes the names and flags of every cookie the
// application sets.
package cookies

import (
	"net/http"
	"time"

	"planotes/config"

	"github.com/labstack/echo/v4"
)

const (
	// Session holds the signed session token.
	Session = "sesid"

	// Link holds the signed magic-link identifier between request and
	// redemption.
	Link = "magid"

	// ColorScheme holds the plain UI theme preference.
	ColorScheme = "csch"

	colorSchemeMaxAge = 365 * 24 * time.Hour
)

// SetSession writes the session cookie. Ephemeral sessions get no Expires so
// the browser drops the cookie on close; the token itself still carries the
// real expiry.
func SetSession(c echo.Context, app *config.AppConfig, value string, validUntil time.Time, persistent bool) {
	cookie := signedCookie(app, Session, value)
	if persistent {
		cookie.Expires = validUntil
		cookie.MaxAge = int(time.Until(validUntil).Seconds())
	}
	c.SetCookie(cookie)
}

// SetLink writes the magic-link identifier cookie, expiring with the link.
func SetLink(c echo.Context, app *config.AppConfig, value string, validUntil time.Time) {
	cookie := signedCookie(app, Link, value)
	cookie.Expires = validUntil
	cookie.MaxAge = int(time.Until(validUntil).Seconds())
	c.SetCookie(cookie)
}

// SetColorScheme writes the theme preference for a year. It is readable by
// scripts on purpose; it carries no secret.
func SetColorScheme(c echo.Context, app *config.AppConfig, scheme string) {
	cookie := baseCookie(app, ColorScheme, scheme)
	cookie.Expires = time.Now().Add(colorSchemeMaxAge)
	cookie.MaxAge = int(colorSchemeMaxAge.Seconds())
	c.SetCookie(cookie)
}

// Clear expires a cookie immediately.
func Clear(c echo.Context, app *config.AppConfig, name string) {
	cookie := signedCookie(app, name, "")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

func signedCookie(app *config.AppConfig, name, value string) *http.Cookie {
	cookie := baseCookie(app, name, value)
	cookie.HttpOnly = true

	return cookie
}

func baseCookie(app *config.AppConfig, name, value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
	if app != nil {
		cookie.Domain = app.CookieDomain
		cookie.Secure = app.SecureCookies
	}

	return cookie
}
