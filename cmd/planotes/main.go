package main

import (
	"context"
	"log/slog"
	"os"

	"planotes/config"
	"planotes/internal/delivery"
	"planotes/internal/delivery/http"
	httpmw "planotes/internal/delivery/http/middleware"
	"planotes/internal/delivery/http/router/handler"
	"planotes/internal/infra/auth"
	"planotes/internal/infra/avatar"
	logs "planotes/internal/infra/log"
	"planotes/internal/infra/mail"
	"planotes/internal/infra/persistence/postgres"
	"planotes/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMagicLinkRepository,
			postgres.NewNoteRepository,
			postgres.NewCompletableRepository,
			postgres.NewItemRepository,
			postgres.NewBalanceEntryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCookieTokenService,
			mail.NewSMTPMailer,
			avatar.NewIdenticonService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewNoteService,
			impl.NewCompletableService,
			impl.NewShopService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewSessionMiddleware,
			httpmw.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewNoteHandler,
			handler.NewCompletableHandler,
			handler.NewShopHandler,
			handler.NewAvatarHandler,
			handler.NewPreferenceHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
