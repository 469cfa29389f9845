// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	deliverycontext "planotes/internal/delivery/context"
	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/domain/service"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// magicLinkValidity is how long an emailed link stays redeemable.
	magicLinkValidity = 15 * time.Minute

	// regenerationDelay is how long before expiry a fresh link may be
	// requested. A live link younger than validity-delay blocks new requests.
	regenerationDelay = 2 * time.Minute

	magicLinkTokenBytes = 32
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	linkRepo     repository.MagicLinkRepository
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	MagicLinkRepo repository.MagicLinkRepository
	TokenService  service.TokenService
	Mailer        service.Mailer
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		linkRepo:     params.MagicLinkRepo,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestMagicLink upserts the account for the email, replaces any previous
// link and emails the fresh token. The emailed token and the identifier
// cookie must meet again at redemption.
func (srv *authService) RequestMagicLink(ctx context.Context, input usecase.RequestMagicLinkInput) (*usecase.RequestMagicLinkOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Info("Magic link requested", slog.String("email", email))

	duration := entity.SessionEphemeral
	if input.RememberMe {
		duration = entity.SessionPersistent
	}

	token, err := generateLinkToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate magic link token")
	}

	now := time.Now()
	link := &entity.MagicLink{
		Token:           token,
		SessionDuration: duration,
		ValidUntil:      now.Add(magicLinkValidity),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		linkRepo := repoFactory.MagicLinkRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{Email: email, AvatarSeed: email}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create account for magic link")
			}
			srv.log(ctx).Info("Account created by magic link request", slog.Any("userID", user.ID))
		} else if err != nil {
			return errors.Wrap(err, "failed to find account by email")
		}

		previous, err := linkRepo.FindLatestByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrMagicLinkNotFound) {
			return errors.Wrap(err, "failed to check previous magic link")
		}
		if previous != nil {
			if now.Sub(previous.CreatedAt) < magicLinkValidity-regenerationDelay {
				return domainerrors.ErrMagicLinkRateLimited
			}
			// Replace the old row so only one live link exists per user.
			if err := linkRepo.Delete(ctx, previous.ID); err != nil {
				return errors.Wrap(err, "failed to replace previous magic link")
			}
		}

		link.UserID = user.ID

		return errors.Wrap(linkRepo.Create(ctx, link), "failed to persist magic link")
	})
	if err != nil {
		srv.log(ctx).Warn("Magic link request rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Delivery happens outside the transaction; a failed send must not leave
	// a redeemable link behind.
	if err := srv.mailer.SendMagicLink(ctx, email, token, magicLinkValidity); err != nil {
		srv.log(ctx).Error("Magic link delivery failed", slog.Any("userID", link.UserID), slog.Any("error", err))

		if delErr := srv.linkRepo.Delete(ctx, link.ID); delErr != nil {
			srv.log(ctx).Error("Failed to remove undeliverable magic link", slog.Any("linkID", link.ID), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrMailDelivery
	}

	cookieValue, err := srv.tokenService.IssueLinkToken(link.ID, link.ValidUntil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign link identifier cookie")
	}
	srv.log(ctx).Debug("Magic link issued", slog.Any("userID", link.UserID), slog.Time("validUntil", link.ValidUntil))

	return &usecase.RequestMagicLinkOutput{
		LinkCookie: cookieValue,
		ValidUntil: link.ValidUntil,
	}, nil
}

// RedeemMagicLink exchanges an emailed token plus the identifier cookie for a
// session cookie. Every failure mode collapses into one generic error so the
// response cannot be used to probe which part was wrong.
func (srv *authService) RedeemMagicLink(ctx context.Context, input usecase.RedeemMagicLinkInput) (*usecase.RedeemMagicLinkOutput, error) {
	if input.LinkCookie == "" {
		return nil, domainerrors.ErrMagicLinkInvalid
	}

	linkID, err := srv.tokenService.ParseLinkToken(input.LinkCookie)
	if err != nil {
		srv.log(ctx).Warn("Redemption with bad identifier cookie", slog.Any("error", err))

		return nil, domainerrors.ErrMagicLinkInvalid
	}

	link, err := srv.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrMagicLinkNotFound) {
			return nil, domainerrors.ErrMagicLinkInvalid
		}

		return nil, errors.Wrap(err, "failed to load magic link")
	}

	// Constant-time compare; combined with the expiry check into a single
	// generic failure.
	now := time.Now()
	tokenMatches := subtle.ConstantTimeCompare([]byte(input.Token), []byte(link.Token)) == 1
	if link.Expired(now) || !tokenMatches {
		srv.log(ctx).Warn("Magic link redemption failed", slog.Any("linkID", link.ID))

		return nil, domainerrors.ErrMagicLinkInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, link.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for redeemed link")
	}

	validUntil := now.Add(link.SessionDuration.TTL())
	sessionCookie, err := srv.tokenService.IssueSessionToken(user.ID, validUntil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session cookie")
	}
	srv.log(ctx).Info("Session issued", slog.Any("userID", user.ID), slog.Time("validUntil", validUntil))

	return &usecase.RedeemMagicLinkOutput{
		SessionCookie: sessionCookie,
		ValidUntil:    validUntil,
		Persistent:    link.SessionDuration == entity.SessionPersistent,
		User:          user,
	}, nil
}

// VerifySession validates a session cookie value and returns the user id.
func (srv *authService) VerifySession(_ context.Context, sessionCookie string) (uuid.UUID, error) {
	if sessionCookie == "" {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ParseSessionToken(sessionCookie)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return claims.UserID, nil
}

// generateLinkToken returns the base64url encoding of 32 crypto-random bytes.
func generateLinkToken() (string, error) {
	buf := make([]byte, magicLinkTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
