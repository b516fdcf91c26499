// Command worker consumes listing events and keeps each listing's share QR code in the asset store.
package main

import (
	"context"
	"log/slog"

	"matjip/config"
	"matjip/internal/delivery"
	"matjip/internal/delivery/worker"
	"matjip/internal/delivery/worker/handler"
	logs "matjip/internal/infra/log"
	"matjip/internal/infra/qrcode"
	"matjip/internal/infra/storage"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			storage.NewBlobStore,
			qrcode.New,
			handler.NewPushHandler,
			worker.NewServer,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, server delivery.Delivery) {
	lc.Append(fx.StartHook(func() {
		go func() {
			if err := server.Serve(ctx); err != nil {
				logger.Error("listing event worker failed", slog.Any("error", err))
				_ = shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}))
}
