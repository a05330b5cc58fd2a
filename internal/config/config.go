package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/gateway-console/internal/domain"
)

// envPrefix namespaces every environment variable read by the services
const envPrefix = "GW_CONSOLE"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// GatewayConfig describes the external gateway this console configures and observes
type GatewayConfig struct {
	// ConfigPath is the JSON config file the gateway reads at start/reload
	ConfigPath     string        `mapstructure:"config_path"`
	Port           int           `mapstructure:"port"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled"`
	MetricsPort    int           `mapstructure:"metrics_port"`
	MetricsURL     string        `mapstructure:"metrics_url"`
	MetricsTimeout time.Duration `mapstructure:"metrics_timeout"`
}

// WebhookConfig holds outbound webhook delivery configuration
type WebhookConfig struct {
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
	UserAgent       string        `mapstructure:"user_agent"`
}

// CacheConfig holds dashboard statistics cache TTLs
type CacheConfig struct {
	StatsTTL       time.Duration `mapstructure:"stats_ttl"`
	ConnectionsTTL time.Duration `mapstructure:"connections_ttl"`
	ThroughputTTL  time.Duration `mapstructure:"throughput_ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
	// GatewayToken is the bearer token the gateway presents on callbacks
	GatewayToken string `mapstructure:"gateway_token"`
	// CallbackRate is the sustained number of gateway callbacks accepted per second
	CallbackRate float64 `mapstructure:"callback_rate"`
	// CallbackBurst is the token bucket size for gateway callbacks
	CallbackBurst int `mapstructure:"callback_burst"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
	// BatchSize caps the number of records picked up per dispatch run
	BatchSize int `mapstructure:"batch_size"`
}

// ScheduleConfig holds the worker job intervals
type ScheduleConfig struct {
	DispatchInterval time.Duration `mapstructure:"dispatch_interval"`
	RetryInterval    time.Duration `mapstructure:"retry_interval"`
	CleanupInterval  time.Duration `mapstructure:"cleanup_interval"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Gateway    GatewayConfig  `mapstructure:"gateway"`
	Webhook    WebhookConfig  `mapstructure:"webhook"`
	Cache      CacheConfig    `mapstructure:"cache"`
}

// WorkerServiceConfig holds configuration for the webhook worker
type WorkerServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Webhook    WebhookConfig  `mapstructure:"webhook"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Schedule   ScheduleConfig `mapstructure:"schedule"`
}

// ConfigSyncConfig holds configuration for the config-sync command
type ConfigSyncConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Gateway    GatewayConfig  `mapstructure:"gateway"`
}

// setCommonDefaults sets defaults shared by every service
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

// setGatewayDefaults sets the gateway defaults
func setGatewayDefaults(v *viper.Viper) {
	v.SetDefault("gateway.config_path", domain.DEFAULT_GATEWAY_CONFIG_PATH)
	v.SetDefault("gateway.port", domain.DEFAULT_GATEWAY_PORT)
	v.SetDefault("gateway.metrics_enabled", true)
	v.SetDefault("gateway.metrics_port", domain.DEFAULT_METRICS_PORT)
	v.SetDefault("gateway.metrics_url", domain.DEFAULT_METRICS_URL)
	v.SetDefault("gateway.metrics_timeout", domain.DEFAULT_METRICS_TIMEOUT)
}

// setWebhookDefaults sets the outbound webhook defaults
func setWebhookDefaults(v *viper.Viper) {
	v.SetDefault("webhook.delivery_timeout", domain.DEFAULT_DELIVERY_TIMEOUT)
	v.SetDefault("webhook.user_agent", domain.DEFAULT_USER_AGENT)
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	setGatewayDefaults(v)
	setWebhookDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 45) // longer than the webhook test-send timeout
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("auth.callback_rate", 100)
	v.SetDefault("auth.callback_burst", 200)
	v.SetDefault("cache.stats_ttl", "30s")
	v.SetDefault("cache.connections_ttl", "10s")
	v.SetDefault("cache.throughput_ttl", "60s")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the webhook worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerServiceConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	setWebhookDefaults(v)
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("worker.queue_size", 100)
	v.SetDefault("worker.batch_size", 100)
	v.SetDefault("schedule.dispatch_interval", "30s")
	v.SetDefault("schedule.retry_interval", "1m")
	v.SetDefault("schedule.cleanup_interval", "24h")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerServiceConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}
	if config.Schedule.DispatchInterval <= 0 || config.Schedule.RetryInterval <= 0 || config.Schedule.CleanupInterval <= 0 {
		return nil, errors.New("schedule intervals must be positive")
	}

	return &config, nil
}

// LoadConfigSyncConfig loads configuration for the config-sync command
func LoadConfigSyncConfig(configFile string, envPath string) (*ConfigSyncConfig, error) {
	v := configureViper("config-sync", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	setGatewayDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config ConfigSyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Database.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// readConfig reads the config file; a missing file falls back to defaults and environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// validate checks the required database fields
func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// loadEnv loads environment variables from .env files
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/worker/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.gateway_token",
		"auth.callback_rate",
		"auth.callback_burst",
		// Gateway
		"gateway.config_path",
		"gateway.port",
		"gateway.metrics_enabled",
		"gateway.metrics_port",
		"gateway.metrics_url",
		"gateway.metrics_timeout",
		// Webhook delivery
		"webhook.delivery_timeout",
		"webhook.user_agent",
		// Dashboard cache
		"cache.stats_ttl",
		"cache.connections_ttl",
		"cache.throughput_ttl",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		"worker.batch_size",
		"schedule.dispatch_interval",
		"schedule.retry_interval",
		"schedule.cleanup_interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
