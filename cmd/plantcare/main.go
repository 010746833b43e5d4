package main

import (
	"context"
	"log/slog"
	"os"

	"plantcare/config"
	"plantcare/internal/delivery"
	"plantcare/internal/delivery/api"
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"
	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/cache"
	"plantcare/internal/infra/directory"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/infra/pubsub"
	"plantcare/internal/infra/qrcode"
	"plantcare/internal/infra/trefle"
	"plantcare/internal/usecase/impl"

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
		cache.NewRedisClient,
		cache.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPlantRepository,
			postgres.NewTransactionManager,
			directory.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
		),
		pubsub.Module,
		trefle.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewPlantService,
			impl.NewSuggestionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPlantHandler,
			handler.NewSuggestionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
