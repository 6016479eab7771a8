package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Pricing   PricingConfig   `mapstructure:"pricing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Git       GitConfig       `mapstructure:"git"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// StorageConfig holds the flat-file data layout
type StorageConfig struct {
	// ProductsPath is the catalog JSON file, the system of record.
	ProductsPath string `mapstructure:"products_path"`
	// ImagesPath is where uploaded product images land; served
	// statically under /images.
	ImagesPath string `mapstructure:"images_path"`
	// StatePath backs the per-shopper key-value namespaces.
	StatePath string `mapstructure:"state_path"`
}

// PricingConfig holds coupon engine tunables
type PricingConfig struct {
	// ScratchThreshold is the revealed percentage at which the
	// scratch-card coupon unlocks.
	ScratchThreshold float64 `mapstructure:"scratch_threshold"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Environment string `mapstructure:"environment"`
}

// GitConfig controls the optional auto-commit of catalog writes
type GitConfig struct {
	AutoCommit bool   `mapstructure:"auto_commit"`
	Message    string `mapstructure:"message"`
}

var globalConfig *Config

// Load loads the configuration from file, .env, and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// .env is optional, log but don't fail
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Warning: .env file not loaded")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("STOREFRONT")
	bindEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")

	// Storage
	v.BindEnv("storage.products_path", "PRODUCTS_PATH")
	v.BindEnv("storage.images_path", "IMAGES_PATH")
	v.BindEnv("storage.state_path", "STATE_PATH")

	// Telemetry
	v.BindEnv("telemetry.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	// Storage defaults mirror the public/ layout the web client expects
	v.SetDefault("storage.products_path", "./public/products.json")
	v.SetDefault("storage.images_path", "./public/images")
	v.SetDefault("storage.state_path", "./data/state")

	// Pricing defaults
	v.SetDefault("pricing.scratch_threshold", 50.0)

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst_size", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.no_color", false)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "storefront-service")
	v.SetDefault("telemetry.environment", "production")

	// Git auto-commit defaults (off unless the deployment opts in)
	v.SetDefault("git.auto_commit", false)
	v.SetDefault("git.message", "Auto update products")
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// AdminAPIKey returns the admin API key from the environment. Admin
// endpoints refuse to serve when it is unset.
func AdminAPIKey() string {
	return os.Getenv("ADMIN_API_KEY")
}
