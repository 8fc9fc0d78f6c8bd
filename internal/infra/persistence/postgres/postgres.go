package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"comanda/config"
	"comanda/internal/domain/lifecycle"
	"comanda/internal/errors"
	"comanda/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval   = 5 * time.Second
	poolSlowWaitWarning = 50 * time.Millisecond
)

// Params are the dependencies of New. Metrics is absent in the CLI.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the pool, verifies it on start and closes it on stop. Statements
// run without GORM's implicit transaction; multi-step writes use
// TransactionManager.Execute.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB); err != nil {
			return nil, err
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Logger != nil {
				go watchPool(watchCtx, params.Logger, sqlDB)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// poolWaits tracks how long callers queued for a connection between checks.
type poolWaits struct {
	prev sql.DBStats
}

// next reports the queueing since the previous check. ok is false when nobody
// waited; slow is set once the added wait time reaches poolSlowWaitWarning.
func (w *poolWaits) next(cur sql.DBStats) (attrs []slog.Attr, slow, ok bool) {
	waits := cur.WaitCount - w.prev.WaitCount
	waited := cur.WaitDuration - w.prev.WaitDuration
	w.prev = cur

	if waits <= 0 {
		return nil, false, false
	}

	attrs = []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	}

	return attrs, waited >= poolSlowWaitWarning, true
}

func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	waits := &poolWaits{prev: sqlDB.Stats()}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			attrs, slow, ok := waits.next(sqlDB.Stats())
			if !ok {
				continue
			}

			level := slog.LevelDebug
			if slow {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Callers waited for a PostgreSQL connection", attrs...)
		}
	}
}
