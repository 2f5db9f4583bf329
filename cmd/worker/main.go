package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/adapters/event"
	"github.com/khoahotran/cvos/adapters/export"
	"github.com/khoahotran/cvos/adapters/media_storage"
	"github.com/khoahotran/cvos/adapters/persistence"
	"github.com/khoahotran/cvos/adapters/render"
	exportUC "github.com/khoahotran/cvos/internal/application/usecase/export"
	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/pkg/logger"
	"github.com/khoahotran/cvos/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting cvOS export worker...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.NewTracerProvider(cfg, appLogger, "cvos-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer shutdownTracer(context.Background())

	kv, closeStore, err := persistence.NewStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init key-value store", err, zap.String("driver", cfg.Store.Driver))
	}
	defer closeStore()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	renderer, err := render.New()
	if err != nil {
		appLogger.Fatal("Cannot parse templates", err)
	}

	processExportUC := exportUC.NewProcessExportUseCase(
		renderer,
		export.NewChromedpRenderer(cfg, appLogger),
		uploader,
		kv,
		cfg.Cloudinary.Folder,
		appLogger,
	)

	consumer := event.NewExportReader(cfg)
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", consumer.Config().Topic))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		l := appLogger.With(zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))
		req, err := event.DecodeExportRequest(msg)
		if err != nil {
			l.Error("Failed to decode export request. Skipping.", err)
			commitMessage(consumer, msg, l)
			continue
		}

		if _, err := processExportUC.Execute(ctx, req); err != nil {
			l.Error("Failed to process export", err, zap.String("owner_id", req.OwnerID.String()))
			continue
		}
		commitMessage(consumer, msg, l)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
