package main

import (
	"context"
	"log/slog"
	"os"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/api"
	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/router/handler"
	"comanda/internal/infra/auth"
	"comanda/internal/infra/cache"
	"comanda/internal/infra/clock"
	logs "comanda/internal/infra/log"
	"comanda/internal/infra/metrics"
	"comanda/internal/infra/persistence/postgres"
	"comanda/internal/infra/pubsub"
	"comanda/internal/infra/qrcode"
	"comanda/internal/infra/realtime"
	"comanda/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		metrics.New,
		clock.New,
		cache.New,
		newHub,
	)
}

// newHub starts the order feed loop with the application and stops it on shutdown.
func newHub(lc fx.Lifecycle, logger *slog.Logger, m *metrics.Metrics) *realtime.Hub {
	hub := realtime.NewHub(logger, m)
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(runCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return hub
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRestaurantService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewCashRegisterService,
			impl.NewDeviceService,
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
			handler.NewRestaurantHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewCashRegisterHandler,
			handler.NewDeviceHandler,
			handler.NewOrderFeedHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
