package main

import (
	"context"
	"log/slog"
	"os"

	"matjip/config"
	"matjip/internal/domain/lifecycle"
	logs "matjip/internal/infra/log"
	"matjip/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(registerMigration),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 2*lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()

	return app.Stop(stopCtx)
}

// registerMigration runs after the database hook has verified the connection.
func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Listing schema is up to date")

			return nil
		},
	})
}
