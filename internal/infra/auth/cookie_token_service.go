// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"planotes/config"
	"planotes/internal/domain/service"
)

const (
	tokenTypeSession = "session"
	tokenTypeLink    = "link"
)

// cookieTokenService signs cookie payloads as HS256 JWTs. Session cookies and
// magic-link identifier cookies use separate secrets.
type cookieTokenService struct {
	sessionSecret string // Secret key for signing session cookies.
	linkSecret    string // Secret key for signing magic-link identifier cookies.
}

// NewCookieTokenService is the constructor for cookieTokenService.
func NewCookieTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.MagicLink == "" {
		return nil, errors.New("cookie signing secrets must be provided")
	}

	return &cookieTokenService{
		sessionSecret: cfg.SecretKey.Session,
		linkSecret:    cfg.SecretKey.MagicLink,
	}, nil
}

// IssueSessionToken creates a signed session token expiring at validUntil.
func (s *cookieTokenService) IssueSessionToken(userID uuid.UUID, validUntil time.Time) (string, error) {
	return s.signToken(userID, validUntil, tokenTypeSession, s.sessionSecret)
}

// ParseSessionToken validates a session token and extracts its claims.
func (s *cookieTokenService) ParseSessionToken(token string) (*service.SessionClaims, error) {
	subject, expiry, err := s.parseToken(token, tokenTypeSession, s.sessionSecret)
	if err != nil {
		return nil, err
	}

	return &service.SessionClaims{UserID: subject, ValidUntil: expiry}, nil
}

// IssueLinkToken creates a signed magic-link identifier expiring at validUntil.
func (s *cookieTokenService) IssueLinkToken(linkID uuid.UUID, validUntil time.Time) (string, error) {
	return s.signToken(linkID, validUntil, tokenTypeLink, s.linkSecret)
}

// ParseLinkToken validates a magic-link identifier and returns the link id.
func (s *cookieTokenService) ParseLinkToken(token string) (uuid.UUID, error) {
	subject, _, err := s.parseToken(token, tokenTypeLink, s.linkSecret)
	if err != nil {
		return uuid.Nil, err
	}

	return subject, nil
}

// signToken is a private helper to create a JWT with subject and expiry claims.
func (s *cookieTokenService) signToken(subject uuid.UUID, validUntil time.Time, tokenType, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject.String(),  // Subject (who or what the token is for)
		"iat":  time.Now().Unix(), // Issued At
		"exp":  validUntil.Unix(), // Expiration Time
		"type": tokenType,         // Type of token (session or link)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// parseToken validates a token string against a secret and expected type.
// Expiry is enforced by the JWT library during Parse.
func (s *cookieTokenService) parseToken(tokenString, wantType, secret string) (uuid.UUID, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, time.Time{}, jwt.ErrTokenInvalidClaims
	}

	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return uuid.Nil, time.Time{}, jwt.ErrTokenInvalidClaims
	}

	rawSubject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}

	subject, err := uuid.Parse(rawSubject)
	if err != nil {
		return uuid.Nil, time.Time{}, jwt.ErrTokenInvalidClaims
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return uuid.Nil, time.Time{}, jwt.ErrTokenInvalidClaims
	}

	return subject, expiry.Time, nil
}
