package main

import (
	"context"
	"log/slog"
	"os"

	"kasa/config"
	"kasa/internal/delivery"
	"kasa/internal/delivery/api"
	"kasa/internal/delivery/api/middleware"
	"kasa/internal/delivery/api/router/handler"
	"kasa/internal/infra/auth"
	"kasa/internal/infra/document"
	"kasa/internal/infra/identity"
	logs "kasa/internal/infra/log"
	"kasa/internal/infra/persistence/gormstore"
	"kasa/internal/infra/qrcode"
	"kasa/internal/infra/storage"
	"kasa/internal/usecase/impl"

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
		gormstore.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewProfileRepository,
			gormstore.NewCredentialRepository,
			gormstore.NewPropertyRepository,
			gormstore.NewPaymentRepository,
			gormstore.NewContractRepository,
			gormstore.NewTenantRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.NewLocalProvider,
			document.New,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewPropertyService,
			impl.NewPaymentService,
			impl.NewContractService,
			impl.NewDashboardService,
			impl.NewDocumentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewPropertyHandler,
			handler.NewPaymentHandler,
			handler.NewContractHandler,
			handler.NewDashboardHandler,
			handler.NewDocumentHandler,
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
