package main

import (
	"context"
	"log/slog"
	"os"

	"pushcast/config"
	"pushcast/internal/delivery"
	"pushcast/internal/delivery/worker"
	"pushcast/internal/delivery/worker/handler"
	"pushcast/internal/domain/repository"
	"pushcast/internal/domain/service"
	firebaseapp "pushcast/internal/infra/firebase"
	logs "pushcast/internal/infra/log"
	"pushcast/internal/infra/messaging"
	firestoredb "pushcast/internal/infra/persistence/firestore"
	"pushcast/internal/usecase"
	"pushcast/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
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
		firebaseapp.NewApp,
		firestoredb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewRegistrationRepository,
			firestoredb.NewContentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			messaging.NewFCMMessenger,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotifyService,
		),
	)
}

// newNotifyService wires the dispatch pipeline with the configured batch size
func newNotifyService(
	cfg *config.Config,
	logger *slog.Logger,
	registrationRepo repository.RegistrationRepository,
	contentRepo repository.ContentRepository,
	messenger service.Messenger,
) usecase.NotifyUsecase {
	return impl.NewNotifyService(logger, registrationRepo, contentRepo, messenger, cfg.Notify.MulticastBatchSize)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
