package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/adapters/analysis_client"
	"github.com/khoahotran/cvos/adapters/event"
	httpAdapter "github.com/khoahotran/cvos/adapters/http"
	"github.com/khoahotran/cvos/adapters/persistence"
	"github.com/khoahotran/cvos/adapters/render"
	authUC "github.com/khoahotran/cvos/internal/application/usecase/auth"
	checkerUC "github.com/khoahotran/cvos/internal/application/usecase/checker"
	exportUC "github.com/khoahotran/cvos/internal/application/usecase/export"
	localeUC "github.com/khoahotran/cvos/internal/application/usecase/locale"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/auth"
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
	appLogger.Info("Starting cvOS server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.NewTracerProvider(cfg, appLogger, "cvos-server")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer shutdownTracer(context.Background())

	// Storage
	kv, closeStore, err := persistence.NewStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init key-value store", err, zap.String("driver", cfg.Store.Driver))
	}
	defer closeStore()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka producer", err)
	}
	defer kafkaClient.Close()

	renderer, err := render.New()
	if err != nil {
		appLogger.Fatal("Cannot parse templates", err)
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	analysisClient := analysis_client.NewClient(cfg, appLogger)
	registry := wizard.NewRegistry(kv, profile.UUIDGenerator{}, cfg.Store.Timeout, appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(jwtSvc, appLogger)
	localeUseCase := localeUC.NewLocaleUseCase(kv, cfg.Store.Timeout, appLogger)
	checkUseCase := checkerUC.NewCheckUseCase(analysisClient, appLogger)
	requestExportUseCase := exportUC.NewRequestExportUseCase(kafkaClient, appLogger)
	getExportUseCase := exportUC.NewGetExportUseCase(kv)

	// HTTP Handlers
	checkerHandler := httpAdapter.NewCheckerHandler(checkUseCase, appLogger)
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Auth:    httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Wizard:  httpAdapter.NewWizardHandler(registry, requestExportUseCase, getExportUseCase, localeUseCase, appLogger),
		Checker: checkerHandler,
		Locale:  httpAdapter.NewLocaleHandler(localeUseCase),
		Pages:   httpAdapter.NewPageHandler(renderer, registry, localeUseCase, checkerHandler, loginUseCase, cfg.Auth.TokenLifespan, appLogger),
	}, jwtSvc, appLogger)

	go evictIdleSessions(ctx, registry, cfg.Session.IdleTimeout, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           otelhttp.NewHandler(router, "cvos-server"),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Analysis.Timeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}

// evictIdleSessions drops wizard controllers nobody touched for idle. Their
// profiles stay in the store and are rehydrated on the next request.
func evictIdleSessions(ctx context.Context, reg *wizard.Registry, idle time.Duration, log logger.Logger) {
	if idle <= 0 {
		return
	}
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := reg.Evict(idle); n > 0 {
				log.Debug("Evicted idle wizard sessions", zap.Int("evicted", n), zap.Int("active", reg.Len()))
			}
		}
	}
}
