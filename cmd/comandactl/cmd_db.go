package main

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/lifecycle"
	logs "comanda/internal/infra/log"
	"comanda/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// comandactl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			db     *gorm.DB
			logger *slog.Logger
		)

		app := fx.New(
			fx.NopLogger,
			fx.Provide(
				config.New,
				logs.New,
				postgres.New,
			),
			fx.Populate(&db, &logger),
		)
		if err := app.Err(); err != nil {
			return errors.Wrap(err, "failed to build application")
		}

		startCtx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Start(startCtx); err != nil {
			return errors.Wrap(err, "failed to connect to database")
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer stopCancel()
			_ = app.Stop(stopCtx)
		}()

		return postgres.Migrate(cmd.Context(), db, logger)
	},
}
