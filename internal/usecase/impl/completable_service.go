package impl

import (
	"context"
	"log/slog"

	deliverycontext "planotes/internal/delivery/context"
	"planotes/internal/domain/entity"
	domainerrors "planotes/internal/domain/errors"
	"planotes/internal/domain/repository"
	"planotes/internal/usecase"
	"planotes/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// completableService implements the CompletableUsecase interface.
type completableService struct {
	txManager       repository.TransactionManager
	completableRepo repository.CompletableRepository
	logger          *slog.Logger
}

// CompletableServiceParams holds dependencies for completableService, injected by Fx.
type CompletableServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CompletableRepo repository.CompletableRepository
	Logger          *slog.Logger
}

// NewCompletableService is the constructor for completableService.
func NewCompletableService(params CompletableServiceParams) usecase.CompletableUsecase {
	return &completableService{
		txManager:       params.TxManager,
		completableRepo: params.CompletableRepo,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *completableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new goal or task in the to-do status.
func (srv *completableService) Create(ctx context.Context, input usecase.CreateCompletableInput) (*entity.Completable, error) {
	if err := srv.validateGoalLink(ctx, input.UserID, input.Kind, input.GoalID); err != nil {
		return nil, err
	}

	contentText := util.StripHTML(input.ContentHTML)
	completable := &entity.Completable{
		UserID:       input.UserID,
		Kind:         input.Kind,
		Title:        input.Title,
		ContentHTML:  input.ContentHTML,
		ContentText:  contentText,
		ContentChars: util.CountChars(contentText),
		Size:         input.Size,
		Priority:     input.Priority,
		Status:       entity.StatusToDo,
		GoalID:       input.GoalID,
	}

	if err := srv.completableRepo.Create(ctx, completable); err != nil {
		srv.log(ctx).Error("Failed to create completable", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create completable")
	}
	srv.log(ctx).Debug("Completable created", slog.Any("completableID", completable.ID), slog.String("kind", string(completable.Kind)))

	return completable, nil
}

// Get retrieves a completable scoped by its owner.
func (srv *completableService) Get(ctx context.Context, userID, completableID uuid.UUID) (*entity.Completable, error) {
	completable, err := srv.completableRepo.FindByID(ctx, userID, completableID)
	if err != nil {
		if errors.Is(err, repository.ErrCompletableNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load completable")
	}

	return completable, nil
}

// List returns a filtered, paginated page of the user's completables.
func (srv *completableService) List(ctx context.Context, input usecase.ListCompletablesInput) (*repository.Paged[*entity.Completable], error) {
	filter := repository.CompletableFilter{Kind: input.Kind, Status: input.Status}

	page, err := srv.completableRepo.ListByUser(ctx, input.UserID, filter, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completables")
	}

	return page, nil
}

// Update modifies the editable fields of a completable. Status is untouched;
// it only moves through Transition.
func (srv *completableService) Update(ctx context.Context, input usecase.UpdateCompletableInput) (*entity.Completable, error) {
	completable, err := srv.completableRepo.FindByID(ctx, input.UserID, input.CompletableID)
	if err != nil {
		if errors.Is(err, repository.ErrCompletableNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load completable for update")
	}

	if err := srv.validateGoalLink(ctx, input.UserID, completable.Kind, input.GoalID); err != nil {
		return nil, err
	}

	contentText := util.StripHTML(input.ContentHTML)
	completable.Title = input.Title
	completable.ContentHTML = input.ContentHTML
	completable.ContentText = contentText
	completable.ContentChars = util.CountChars(contentText)
	completable.Size = input.Size
	completable.Priority = input.Priority
	completable.GoalID = input.GoalID

	if err := srv.completableRepo.Update(ctx, completable); err != nil {
		srv.log(ctx).Error("Failed to update completable", slog.Any("completableID", completable.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update completable")
	}

	return completable, nil
}

// Delete removes a completable scoped by its owner.
func (srv *completableService) Delete(ctx context.Context, userID, completableID uuid.UUID) error {
	if err := srv.completableRepo.Delete(ctx, userID, completableID); err != nil {
		if errors.Is(err, repository.ErrCompletableNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete completable")
	}
	srv.log(ctx).Debug("Completable deleted", slog.Any("completableID", completableID))

	return nil
}

// Transition applies a status move. The status update, the parent goal bump
// and the completion payout commit in one transaction, so a failure anywhere
// leaves nothing changed.
func (srv *completableService) Transition(ctx context.Context, input usecase.TransitionInput) (*usecase.TransitionOutput, error) {
	srv.log(ctx).Info("Status transition requested",
		slog.Any("completableID", input.CompletableID),
		slog.String("to", string(input.To)),
	)

	var output *usecase.TransitionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		completableRepo := repoFactory.CompletableRepo()

		completable, err := completableRepo.FindByID(ctx, input.UserID, input.CompletableID)
		if err != nil {
			if errors.Is(err, repository.ErrCompletableNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load completable for transition")
		}

		if !completable.Status.CanTransition(input.To) {
			return domainerrors.ErrStatusTransition
		}

		from := completable.Status
		completable.Status = input.To
		if err := completableRepo.Update(ctx, completable); err != nil {
			return errors.Wrap(err, "failed to persist status change")
		}

		// A task starting work pulls its untouched parent goal along.
		if completable.Kind == entity.KindTask && input.To == entity.StatusInProgress && completable.GoalID != nil {
			if err := srv.bumpParentGoal(ctx, repoFactory, input.UserID, *completable.GoalID); err != nil {
				return err
			}
		}

		payout := 0
		if input.To == entity.StatusCompleted {
			payout = completable.Payout()
			if err := srv.creditPayout(ctx, repoFactory, completable, payout); err != nil {
				return err
			}
		}

		srv.log(ctx).Debug("Status transition applied",
			slog.Any("completableID", completable.ID),
			slog.String("from", string(from)),
			slog.String("to", string(input.To)),
			slog.Int("payout", payout),
		)
		output = &usecase.TransitionOutput{Completable: completable, Payout: payout}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Status transition rejected",
			slog.Any("completableID", input.CompletableID),
			slog.String("to", string(input.To)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return output, nil
}

// bumpParentGoal moves a to-do goal to in-progress when one of its tasks starts.
func (srv *completableService) bumpParentGoal(ctx context.Context, repoFactory repository.RepositoryFactory, userID, goalID uuid.UUID) error {
	completableRepo := repoFactory.CompletableRepo()

	goal, err := completableRepo.FindByID(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrCompletableNotFound) {
			// Dangling link, nothing to bump.
			return nil
		}

		return errors.Wrap(err, "failed to load parent goal")
	}

	if goal.Status != entity.StatusToDo {
		return nil
	}

	goal.Status = entity.StatusInProgress
	if err := completableRepo.Update(ctx, goal); err != nil {
		return errors.Wrap(err, "failed to bump parent goal")
	}

	return nil
}

// creditPayout appends the ledger entry and adds the payout to the balance.
func (srv *completableService) creditPayout(ctx context.Context, repoFactory repository.RepositoryFactory, completable *entity.Completable, payout int) error {
	entry := &entity.BalanceEntry{
		UserID:     completable.UserID,
		Amount:     payout,
		EntityID:   completable.ID,
		EntityType: entity.LedgerCompletable,
	}
	if err := repoFactory.BalanceEntryRepo().Create(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to record payout")
	}

	if err := repoFactory.UserRepo().AddToBalance(ctx, completable.UserID, payout); err != nil {
		return errors.Wrap(err, "failed to credit payout")
	}

	return nil
}

// validateGoalLink checks that a goal link is only set on tasks and points at
// an existing goal of the same owner.
func (srv *completableService) validateGoalLink(ctx context.Context, userID uuid.UUID, kind entity.CompletableKind, goalID *uuid.UUID) error {
	if goalID == nil {
		return nil
	}

	if kind != entity.KindTask {
		return domainerrors.ErrValidationFailed.WithDetails("only tasks can be linked to a goal")
	}

	goal, err := srv.completableRepo.FindByID(ctx, userID, *goalID)
	if err != nil {
		if errors.Is(err, repository.ErrCompletableNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load linked goal")
	}
	if goal.Kind != entity.KindGoal {
		return domainerrors.ErrValidationFailed.WithDetails("linked entity is not a goal")
	}

	return nil
}
