package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/config"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/store"
)

const (
	directionTo   = "to"
	directionFrom = "from"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	direction  = flag.String("direction", directionTo, "Sync direction: 'to' writes the gateway config from the registry, 'from' imports it into the registry")
)

func main() {
	flag.Parse()

	if *direction != directionTo && *direction != directionFrom {
		fmt.Fprintf(os.Stderr, "invalid -direction %q, expected %q or %q\n", *direction, directionTo, directionFrom)
		os.Exit(2)
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadConfigSyncConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "gateway-console-config-sync",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	synchronizer := gatewayconfig.NewSynchronizer(gatewayconfig.Config{
		Path: cfg.Gateway.ConfigPath,
		Options: gatewayconfig.Options{
			Debug:          cfg.Debug,
			Port:           cfg.Gateway.Port,
			MetricsEnabled: cfg.Gateway.MetricsEnabled,
			MetricsPort:    cfg.Gateway.MetricsPort,
		},
	}, store.NewPGStore(db), adapter.NewFileSystem(), adapter.NewJSON())

	if !run(ctx, synchronizer, *direction) {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

// run executes one sync and reports success
func run(ctx context.Context, synchronizer gatewayconfig.Synchronizer, direction string) bool {
	if direction == directionTo {
		ok := synchronizer.SyncToGateway(ctx)
		logger.InfoCtx(ctx, "Synced registry to gateway config",
			zap.String("path", synchronizer.Path()),
			zap.Bool("synced", ok))
		return ok
	}

	result, ok := synchronizer.SyncFromConfig(ctx)
	logger.InfoCtx(ctx, "Imported gateway config into registry",
		zap.String("path", synchronizer.Path()),
		zap.Bool("imported", ok),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed))

	// Write back the normalized document when rows changed
	if result.Created+result.Updated > 0 && !synchronizer.SyncToGateway(ctx) {
		return false
	}
	return ok
}
