package main

import (
	"context"
	"log/slog"
	"os"

	"agenda/config"
	"agenda/internal/delivery"
	"agenda/internal/delivery/api"
	apimiddleware "agenda/internal/delivery/api/middleware"
	"agenda/internal/delivery/api/router/handler"
	"agenda/internal/domain/validation"
	"agenda/internal/infra/auth"
	"agenda/internal/infra/geocode"
	logs "agenda/internal/infra/log"
	"agenda/internal/infra/metrics"
	"agenda/internal/infra/notification"
	"agenda/internal/infra/persistence/postgres"
	"agenda/internal/infra/pubsub"
	"agenda/internal/infra/redis"
	"agenda/internal/usecase/impl"

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
		redis.New,
		newMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIndividualRepository,
			postgres.NewOrganizationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		geocode.Module,
		notification.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			newValidator,
		),
	)
}

// newMetrics returns nil when metrics are disabled; every consumer treats it as optional.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

// newValidator builds the field validators with the configured list overrides.
func newValidator(cfg *config.Config) *validation.Validator {
	if cfg.Validation == nil {
		return validation.New()
	}

	return validation.New(
		validation.WithRegionCodes(cfg.Validation.RegionCodes),
		validation.WithDisposableDomains(cfg.Validation.DisposableDomains),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeocodePolicy,
			impl.NewRegistrationAnnouncer,
			impl.NewIndividualService,
			impl.NewOrganizationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIndividualHandler,
			handler.NewOrganizationHandler,
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
