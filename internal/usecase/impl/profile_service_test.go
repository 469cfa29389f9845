package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	mockRepo "planotes/internal/mocks/repository"
	"planotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestProfileService_Get(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", Balance: 250}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Get(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_Update(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := fx.service.Update(ctx, usecase.UpdateProfileInput{
		UserID:     userID,
		Name:       "Ada",
		AvatarSeed: "ada-again",
		Timezone:   "Europe/Warsaw",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada-again", got.AvatarSeed)
	assert.Equal(t, "Europe/Warsaw", got.Timezone)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteAccount(ctx, userID)

	require.NoError(t, err)
}

func TestProfileService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrNotFound)

	err := fx.service.DeleteAccount(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
