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

// completableServiceFixtures holds all test dependencies for completable service tests.
type completableServiceFixtures struct {
	service         usecase.CompletableUsecase
	txManager       *mockRepo.MockTransactionManager
	completableRepo *mockRepo.MockCompletableRepository
}

func createTestCompletableService(t *testing.T) completableServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	completableRepo := mockRepo.NewMockCompletableRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCompletableService(CompletableServiceParams{
		TxManager:       txManager,
		CompletableRepo: completableRepo,
		Logger:          logger,
	})

	return completableServiceFixtures{
		service:         service,
		txManager:       txManager,
		completableRepo: completableRepo,
	}
}

func TestCompletableService_Create_Task(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.completableRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Completable")).
		Run(func(ctx context.Context, completable *entity.Completable) {
			completable.ID = uuid.New()
		}).
		Return(nil)

	completable, err := fx.service.Create(ctx, usecase.CreateCompletableInput{
		UserID:      userID,
		Kind:        entity.KindTask,
		Title:       "Water the plants",
		ContentHTML: "<p>Every <strong>shelf</strong></p>",
		Size:        entity.SizeM,
		Priority:    entity.PriorityLow,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusToDo, completable.Status)
	assert.Equal(t, "Every shelf", completable.ContentText)
	assert.Equal(t, 11, completable.ContentChars)
}

func TestCompletableService_Create_GoalLinkOnGoalRejected(t *testing.T) {
	fx := createTestCompletableService(t)

	goalID := uuid.New()

	_, err := fx.service.Create(context.Background(), usecase.CreateCompletableInput{
		UserID:   uuid.New(),
		Kind:     entity.KindGoal,
		Title:    "Learn the violin",
		Size:     entity.SizeL,
		Priority: entity.PriorityHigh,
		GoalID:   &goalID,
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCompletableService_Create_LinkedGoalMustExist(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	fx.completableRepo.EXPECT().
		FindByID(ctx, userID, goalID).
		Return(nil, repository.ErrCompletableNotFound)

	_, err := fx.service.Create(ctx, usecase.CreateCompletableInput{
		UserID:   userID,
		Kind:     entity.KindTask,
		Title:    "Practice scales",
		Size:     entity.SizeS,
		Priority: entity.PriorityMedium,
		GoalID:   &goalID,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCompletableService_Create_LinkedEntityMustBeGoal(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherTaskID := uuid.New()

	fx.completableRepo.EXPECT().
		FindByID(ctx, userID, otherTaskID).
		Return(&entity.Completable{ID: otherTaskID, UserID: userID, Kind: entity.KindTask}, nil)

	_, err := fx.service.Create(ctx, usecase.CreateCompletableInput{
		UserID:   userID,
		Kind:     entity.KindTask,
		Title:    "Practice scales",
		Size:     entity.SizeS,
		Priority: entity.PriorityMedium,
		GoalID:   &otherTaskID,
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCompletableService_Get_NotFoundMasksOwnership(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	completableID := uuid.New()

	fx.completableRepo.EXPECT().
		FindByID(ctx, userID, completableID).
		Return(nil, repository.ErrCompletableNotFound)

	_, err := fx.service.Get(ctx, userID, completableID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCompletableService_List_PassesFilter(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	kind := entity.KindTask
	status := entity.StatusInProgress
	expected := &repository.Paged[*entity.Completable]{
		Items:  []*entity.Completable{{ID: uuid.New()}},
		Total:  1,
		Number: 1,
		Size:   20,
	}

	fx.completableRepo.EXPECT().
		ListByUser(ctx, userID, repository.CompletableFilter{Kind: &kind, Status: &status}, repository.Page{Number: 1, Size: 20}).
		Return(expected, nil)

	page, err := fx.service.List(ctx, usecase.ListCompletablesInput{
		UserID: userID,
		Kind:   &kind,
		Status: &status,
		Page:   repository.Page{Number: 1, Size: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, expected, page)
}

func TestCompletableService_Transition_TerminalStatusRejected(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	completableID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompletableRepo := mockRepo.NewMockCompletableRepository(t)

			mockFactory.EXPECT().CompletableRepo().Return(mockCompletableRepo)
			// No Update expectation: a rejected transition must not write.
			mockCompletableRepo.EXPECT().FindByID(ctx, userID, completableID).
				Return(&entity.Completable{
					ID:     completableID,
					UserID: userID,
					Kind:   entity.KindTask,
					Status: entity.StatusCompleted,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrStatusTransition)

	_, err := fx.service.Transition(ctx, usecase.TransitionInput{
		UserID:        userID,
		CompletableID: completableID,
		To:            entity.StatusInProgress,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrStatusTransition))
}

func TestCompletableService_Transition_CompletionCreditsPayout(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	completableID := uuid.New()
	task := &entity.Completable{
		ID:     completableID,
		UserID: userID,
		Kind:   entity.KindTask,
		Size:   entity.SizeM,
		Status: entity.StatusInProgress,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompletableRepo := mockRepo.NewMockCompletableRepository(t)
			mockBalanceEntryRepo := mockRepo.NewMockBalanceEntryRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().CompletableRepo().Return(mockCompletableRepo)
			mockFactory.EXPECT().BalanceEntryRepo().Return(mockBalanceEntryRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockCompletableRepo.EXPECT().FindByID(ctx, userID, completableID).Return(task, nil)
			mockCompletableRepo.EXPECT().Update(ctx, task).Return(nil)
			mockBalanceEntryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.BalanceEntry")).
				Run(func(ctx context.Context, entry *entity.BalanceEntry) {
					assert.Equal(t, 100, entry.Amount)
					assert.Equal(t, completableID, entry.EntityID)
					assert.Equal(t, entity.LedgerCompletable, entry.EntityType)
				}).
				Return(nil)
			mockUserRepo.EXPECT().AddToBalance(ctx, userID, 100).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Transition(ctx, usecase.TransitionInput{
		UserID:        userID,
		CompletableID: completableID,
		To:            entity.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, output.Payout)
	assert.Equal(t, entity.StatusCompleted, output.Completable.Status)
}

func TestCompletableService_Transition_TaskStartBumpsParentGoal(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()
	goalID := uuid.New()
	task := &entity.Completable{
		ID:     taskID,
		UserID: userID,
		Kind:   entity.KindTask,
		Status: entity.StatusToDo,
		GoalID: &goalID,
	}
	goal := &entity.Completable{
		ID:     goalID,
		UserID: userID,
		Kind:   entity.KindGoal,
		Status: entity.StatusToDo,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompletableRepo := mockRepo.NewMockCompletableRepository(t)

			mockFactory.EXPECT().CompletableRepo().Return(mockCompletableRepo)

			mockCompletableRepo.EXPECT().FindByID(ctx, userID, taskID).Return(task, nil)
			mockCompletableRepo.EXPECT().Update(ctx, task).Return(nil)
			mockCompletableRepo.EXPECT().FindByID(ctx, userID, goalID).Return(goal, nil)
			mockCompletableRepo.EXPECT().Update(ctx, goal).Return(nil)

			_ = fn(mockFactory)

			assert.Equal(t, entity.StatusInProgress, goal.Status)
		}).
		Return(nil)

	output, err := fx.service.Transition(ctx, usecase.TransitionInput{
		UserID:        userID,
		CompletableID: taskID,
		To:            entity.StatusInProgress,
	})

	require.NoError(t, err)
	assert.Zero(t, output.Payout)
}

func TestCompletableService_Transition_StartedParentGoalLeftAlone(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	taskID := uuid.New()
	goalID := uuid.New()
	task := &entity.Completable{
		ID:     taskID,
		UserID: userID,
		Kind:   entity.KindTask,
		Status: entity.StatusToDo,
		GoalID: &goalID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCompletableRepo := mockRepo.NewMockCompletableRepository(t)

			mockFactory.EXPECT().CompletableRepo().Return(mockCompletableRepo)

			mockCompletableRepo.EXPECT().FindByID(ctx, userID, taskID).Return(task, nil)
			mockCompletableRepo.EXPECT().Update(ctx, task).Return(nil)
			// The goal is already moving; only its own task update happens.
			mockCompletableRepo.EXPECT().FindByID(ctx, userID, goalID).
				Return(&entity.Completable{
					ID:     goalID,
					UserID: userID,
					Kind:   entity.KindGoal,
					Status: entity.StatusInProgress,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.Transition(ctx, usecase.TransitionInput{
		UserID:        userID,
		CompletableID: taskID,
		To:            entity.StatusInProgress,
	})

	require.NoError(t, err)
}

func TestCompletableService_Delete_NotFound(t *testing.T) {
	fx := createTestCompletableService(t)

	ctx := context.Background()
	userID := uuid.New()
	completableID := uuid.New()

	fx.completableRepo.EXPECT().
		Delete(ctx, userID, completableID).
		Return(repository.ErrCompletableNotFound)

	err := fx.service.Delete(ctx, userID, completableID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
