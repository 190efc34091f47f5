package main

import (
	"context"
	"log/slog"
	"os"

	"expo/config"
	"expo/internal/delivery"
	"expo/internal/delivery/http"
	"expo/internal/delivery/http/middleware"
	"expo/internal/delivery/http/router/handler"
	"expo/internal/infra/auth"
	logs "expo/internal/infra/log"
	"expo/internal/infra/payment/mock"
	"expo/internal/infra/persistence/blobstore"
	"expo/internal/infra/pubsub"
	"expo/internal/infra/qrcode"
	"expo/internal/infra/session"
	"expo/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		blobstore.Module,
		fx.Provide(
			session.NewMemoryStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			fx.Annotate(
				mock.NewGateway,
				fx.ResultTags(`group:"payment_gateways"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLedgerService,
			impl.NewReportService,
			impl.NewPaymentService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewSaleHandler,
			handler.NewPaymentHandler,
			handler.NewWinnersHandler,
			handler.NewCheckoutHandler,
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
