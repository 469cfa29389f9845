package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/domain/service"
	mockRepo "planotes/internal/mocks/repository"
	mockSvc "planotes/internal/mocks/service"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	linkRepo     *mockRepo.MockMagicLinkRepository
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	linkRepo := mockRepo.NewMockMagicLinkRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		MagicLinkRepo: linkRepo,
		TokenService:  tokenService,
		Mailer:        mailer,
		Logger:        logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestAuthService_RequestMagicLink_CreatesAccountOnFirstRequest(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockLinkRepo := mockRepo.NewMockMagicLinkRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MagicLinkRepo().Return(mockLinkRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockLinkRepo.EXPECT().FindLatestByUserID(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil, repository.ErrMagicLinkNotFound)
			mockLinkRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MagicLink")).
				Run(func(ctx context.Context, link *entity.MagicLink) {
					link.ID = linkID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendMagicLink(ctx, "new@example.com", mock.AnythingOfType("string"), 15*time.Minute).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueLinkToken(linkID, mock.AnythingOfType("time.Time")).
		Return("signed-link-cookie", nil)

	output, err := fx.service.RequestMagicLink(ctx, usecase.RequestMagicLinkInput{
		Email: "  New@Example.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-link-cookie", output.LinkCookie)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), output.ValidUntil, time.Minute)
}

func TestAuthService_RequestMagicLink_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{ID: userID, Email: "user@example.com"}
	recentLink := &entity.MagicLink{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().Add(-time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockLinkRepo := mockRepo.NewMockMagicLinkRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MagicLinkRepo().Return(mockLinkRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(existingUser, nil)
			// A link younger than validity minus the regeneration delay blocks
			// the request; neither Delete nor Create may be reached.
			mockLinkRepo.EXPECT().FindLatestByUserID(ctx, userID).Return(recentLink, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrMagicLinkRateLimited)

	_, err := fx.service.RequestMagicLink(ctx, usecase.RequestMagicLinkInput{
		Email: "user@example.com",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMagicLinkRateLimited))
}

func TestAuthService_RequestMagicLink_ReplacesStaleLink(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	staleLinkID := uuid.New()
	existingUser := &entity.User{ID: userID, Email: "user@example.com"}
	staleLink := &entity.MagicLink{
		ID:        staleLinkID,
		UserID:    userID,
		CreatedAt: time.Now().Add(-14 * time.Minute),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockLinkRepo := mockRepo.NewMockMagicLinkRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MagicLinkRepo().Return(mockLinkRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(existingUser, nil)
			mockLinkRepo.EXPECT().FindLatestByUserID(ctx, userID).Return(staleLink, nil)
			// The old row is replaced so only one live link exists per user.
			mockLinkRepo.EXPECT().Delete(ctx, staleLinkID).Return(nil)
			mockLinkRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MagicLink")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendMagicLink(ctx, "user@example.com", mock.AnythingOfType("string"), 15*time.Minute).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueLinkToken(mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return("signed-link-cookie", nil)

	_, err := fx.service.RequestMagicLink(ctx, usecase.RequestMagicLinkInput{
		Email: "user@example.com",
	})

	require.NoError(t, err)
}

func TestAuthService_RequestMagicLink_MailFailureRemovesLink(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockLinkRepo := mockRepo.NewMockMagicLinkRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MagicLinkRepo().Return(mockLinkRepo)

			mockUserRepo.EXPECT().FindByEmail(ctx, "user@example.com").
				Return(&entity.User{ID: uuid.New(), Email: "user@example.com"}, nil)
			mockLinkRepo.EXPECT().FindLatestByUserID(ctx, mock.AnythingOfType("uuid.UUID")).
				Return(nil, repository.ErrMagicLinkNotFound)
			mockLinkRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MagicLink")).
				Run(func(ctx context.Context, link *entity.MagicLink) {
					link.ID = linkID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendMagicLink(ctx, "user@example.com", mock.AnythingOfType("string"), 15*time.Minute).
		Return(errors.New("smtp connection refused"))
	// A failed send must not leave a redeemable link behind.
	fx.linkRepo.EXPECT().Delete(ctx, linkID).Return(nil)

	_, err := fx.service.RequestMagicLink(ctx, usecase.RequestMagicLinkInput{
		Email: "user@example.com",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMailDelivery))
}

func TestAuthService_RedeemMagicLink_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()
	userID := uuid.New()
	link := &entity.MagicLink{
		ID:              linkID,
		UserID:          userID,
		Token:           "emailed-token",
		SessionDuration: entity.SessionPersistent,
		ValidUntil:      time.Now().Add(10 * time.Minute),
	}
	user := &entity.User{ID: userID, Email: "user@example.com"}

	fx.tokenService.EXPECT().ParseLinkToken("link-cookie").Return(linkID, nil)
	fx.linkRepo.EXPECT().FindByID(ctx, linkID).Return(link, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		IssueSessionToken(userID, mock.AnythingOfType("time.Time")).
		Return("signed-session-cookie", nil)

	output, err := fx.service.RedeemMagicLink(ctx, usecase.RedeemMagicLinkInput{
		Token:      "emailed-token",
		LinkCookie: "link-cookie",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-session-cookie", output.SessionCookie)
	assert.True(t, output.Persistent)
	assert.Equal(t, user, output.User)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), output.ValidUntil, time.Minute)
}

func TestAuthService_RedeemMagicLink_MissingCookie(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RedeemMagicLink(context.Background(), usecase.RedeemMagicLinkInput{
		Token: "emailed-token",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMagicLinkInvalid))
}

func TestAuthService_RedeemMagicLink_WrongToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()
	link := &entity.MagicLink{
		ID:              linkID,
		UserID:          uuid.New(),
		Token:           "emailed-token",
		SessionDuration: entity.SessionEphemeral,
		ValidUntil:      time.Now().Add(10 * time.Minute),
	}

	fx.tokenService.EXPECT().ParseLinkToken("link-cookie").Return(linkID, nil)
	fx.linkRepo.EXPECT().FindByID(ctx, linkID).Return(link, nil)

	_, err := fx.service.RedeemMagicLink(ctx, usecase.RedeemMagicLinkInput{
		Token:      "guessed-token",
		LinkCookie: "link-cookie",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMagicLinkInvalid))
}

func TestAuthService_RedeemMagicLink_Expired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()
	link := &entity.MagicLink{
		ID:              linkID,
		UserID:          uuid.New(),
		Token:           "emailed-token",
		SessionDuration: entity.SessionEphemeral,
		ValidUntil:      time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().ParseLinkToken("link-cookie").Return(linkID, nil)
	fx.linkRepo.EXPECT().FindByID(ctx, linkID).Return(link, nil)

	_, err := fx.service.RedeemMagicLink(ctx, usecase.RedeemMagicLinkInput{
		Token:      "emailed-token",
		LinkCookie: "link-cookie",
	})

	// An expired link and a wrong token are indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrMagicLinkInvalid))
}

func TestAuthService_RedeemMagicLink_UnknownLink(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	linkID := uuid.New()

	fx.tokenService.EXPECT().ParseLinkToken("link-cookie").Return(linkID, nil)
	fx.linkRepo.EXPECT().FindByID(ctx, linkID).Return(nil, repository.ErrMagicLinkNotFound)

	_, err := fx.service.RedeemMagicLink(ctx, usecase.RedeemMagicLinkInput{
		Token:      "emailed-token",
		LinkCookie: "link-cookie",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrMagicLinkInvalid))
}

func TestAuthService_VerifySession(t *testing.T) {
	fx := createTestAuthService(t)

	userID := uuid.New()
	fx.tokenService.EXPECT().ParseSessionToken("session-cookie").
		Return(&service.SessionClaims{UserID: userID, ValidUntil: time.Now().Add(time.Hour)}, nil)

	got, err := fx.service.VerifySession(context.Background(), "session-cookie")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestAuthService_VerifySession_EmptyCookie(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.VerifySession(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_VerifySession_BadToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ParseSessionToken("forged").Return(nil, errors.New("signature invalid"))

	_, err := fx.service.VerifySession(context.Background(), "forged")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
