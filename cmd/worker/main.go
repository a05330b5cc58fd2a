package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/config"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/sweeper"
	"github.com/feral-file/gateway-console/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Canceled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "gateway-console-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting webhook worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	engine := webhook.NewEngine(webhook.Config{
		DeliveryTimeout: cfg.Webhook.DeliveryTimeout,
		UserAgent:       cfg.Webhook.UserAgent,
		PersistRetries:  3,
	}, dataStore, adapter.NewHTTPClient(cfg.Webhook.DeliveryTimeout), adapter.NewClock())

	dispatcher := webhook.NewDispatcher(webhook.DispatcherConfig{
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
		BatchSize:       cfg.Worker.BatchSize,
	}, dataStore, engine)

	webhookSweeper := sweeper.NewWebhookSweeper(&sweeper.WebhookSweeperConfig{
		DispatchInterval: cfg.Schedule.DispatchInterval,
		RetryInterval:    cfg.Schedule.RetryInterval,
		CleanupInterval:  cfg.Schedule.CleanupInterval,
	}, dispatcher, engine)

	logger.InfoCtx(ctx, "Initialized webhook sweeper",
		zap.Int("worker_pool_size", cfg.Worker.WorkerPoolSize),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Duration("dispatch_interval", cfg.Schedule.DispatchInterval),
		zap.Duration("retry_interval", cfg.Schedule.RetryInterval),
		zap.Duration("cleanup_interval", cfg.Schedule.CleanupInterval),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return webhookSweeper.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()

		// Give in-flight deliveries time to finish
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Webhook.DeliveryTimeout+5*time.Second)
		defer cancel()
		return webhookSweeper.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(context.Background(), err, zap.String("sweeper", webhookSweeper.Name()))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	logger.Info("Webhook worker stopped")
}
