package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/api/middleware"
	"github.com/feral-file/gateway-console/internal/api/server"
	"github.com/feral-file/gateway-console/internal/api/shared/executor"
	"github.com/feral-file/gateway-console/internal/config"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/ratelimit"
	"github.com/feral-file/gateway-console/internal/registry"
	"github.com/feral-file/gateway-console/internal/stats"
	"github.com/feral-file/gateway-console/internal/store"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "gateway-console-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting gateway console API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Gateway config synchronizer; every registry mutation rewrites the file
	synchronizer := gatewayconfig.NewSynchronizer(gatewayconfig.Config{
		Path: cfg.Gateway.ConfigPath,
		Options: gatewayconfig.Options{
			Debug:          cfg.Debug,
			Port:           cfg.Gateway.Port,
			MetricsEnabled: cfg.Gateway.MetricsEnabled,
			MetricsPort:    cfg.Gateway.MetricsPort,
		},
	}, dataStore, fs, jsonAdapter)
	appRegistry := registry.NewRegistry(dataStore, registry.NewIdentifierGenerator())
	dispatcher := registry.NewSyncDispatcher(synchronizer)

	// Webhook engine for interactive sends; background delivery runs in the worker
	engine := webhook.NewEngine(webhook.Config{
		DeliveryTimeout: cfg.Webhook.DeliveryTimeout,
		UserAgent:       cfg.Webhook.UserAgent,
		PersistRetries:  3,
	}, dataStore, adapter.NewHTTPClient(cfg.Webhook.DeliveryTimeout), clock)

	// Metrics probe and dashboard cache
	probe := metrics.NewProbe(metrics.Config{
		URL:     cfg.Gateway.MetricsURL,
		Timeout: cfg.Gateway.MetricsTimeout,
	}, adapter.NewHTTPClient(cfg.Gateway.MetricsTimeout), clock)
	statsService := stats.NewService(stats.Config{
		OverviewTTL:    cfg.Cache.StatsTTL,
		ConnectionsTTL: cfg.Cache.ConnectionsTTL,
		ThroughputTTL:  cfg.Cache.ThroughputTTL,
	}, dataStore, probe)

	exec := executor.NewExecutor(appRegistry, dispatcher, synchronizer, engine, statsService, probe, dataStore, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		GatewayToken: cfg.Auth.GatewayToken,
		Callback: ratelimit.Config{
			RequestsPerSecond: cfg.Auth.CallbackRate,
			Burst:             cfg.Auth.CallbackBurst,
		},
	}
	if cfg.Auth.GatewayToken == "" {
		logger.WarnCtx(ctx, "Gateway token not configured, every gateway callback will be rejected")
	}

	srv := server.New(serverConfig, exec)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
