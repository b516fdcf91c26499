// Command matjip serves the listing API.
package main

import (
	"context"
	"log/slog"

	"matjip/config"
	"matjip/internal/delivery"
	apiserver "matjip/internal/delivery/api"
	"matjip/internal/delivery/api/middleware"
	"matjip/internal/delivery/api/router/handler"
	"matjip/internal/infra/auth"
	logs "matjip/internal/infra/log"
	"matjip/internal/infra/persistence/postgres"
	"matjip/internal/infra/pubsub"
	"matjip/internal/infra/qrcode"
	"matjip/internal/infra/storage"
	"matjip/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		infra(),
		services(),
		usecases(),
		api(),
		fx.Invoke(startServer),
	).Run()
}

func infra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		postgres.NewListingRepository,
	)
}

func services() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewContextIdentityProvider,
			storage.NewBlobStore,
			qrcode.New,
		),
		pubsub.Module,
	)
}

func usecases() fx.Option {
	return fx.Provide(
		impl.NewListingService,
		impl.NewSubmissionService,
	)
}

func api() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
		handler.NewListingHandler,
		handler.NewAssetHandler,
		fx.Annotate(
			apiserver.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer runs every delivery once the app has started; the first failure shuts the app down.
func startServer(params startServerParams) {
	params.Append(fx.StartHook(func() {
		for _, d := range params.Deliveries {
			go func() {
				if err := d.Serve(params.Ctx); err != nil {
					params.Logger.Error("delivery stopped", slog.Any("error", err))
					_ = params.Shutdown(fx.ExitCode(1))
				}
			}()
		}
	}))
}
