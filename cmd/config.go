package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds the complete application configuration, loadable from
// environment variables (ORDERS_ prefix) and YAML config files.
type Config struct {
	HTTPPort    string   `default:"8080" env:"HTTP_PORT" yaml:"http_port" usage:"HTTP listen port"`
	LogLevel    string   `default:"info" usage:"debug, info, warn or error"`
	Storage     string   `default:"memory" usage:"Order storage backend: memory or postgres"`
	DB          DBConfig `env:"DB" yaml:"db"`
	Kafka       KafkaConfig
	StaleOrders StaleOrdersConfig
	Graceful    GracefulConfig
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host           string `default:"localhost"`
	Port           string `default:"5432"`
	User           string `default:"postgres"`
	Password       string `default:""`
	Name           string `default:"orders"`
	SslMode        string `default:"disable" env:"SSLMODE" yaml:"sslmode"`
	MigrateOnStart bool   `default:"true" usage:"Apply embedded migrations when the service starts"`
}

// KafkaConfig controls order changed event publishing. Publishing is disabled
// when Brokers is empty.
type KafkaConfig struct {
	Brokers           string `default:"" usage:"Comma separated broker addresses"`
	OrderChangedTopic string `default:"orders.order-changed"`
}

// StaleOrdersConfig controls the job canceling abandoned Pending orders.
type StaleOrdersConfig struct {
	TTL      time.Duration `default:"0s" env:"TTL" yaml:"ttl" usage:"Age after which Pending orders are canceled, 0 disables the job"`
	Schedule string        `default:"0 * * * * *" usage:"Cron schedule with seconds"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ShutdownTimeout time.Duration `default:"10s" usage:"Maximum shutdown duration"`
}

// LoadConfig loads configuration from environment variables and the default
// config files.
func LoadConfig() (Config, error) {
	return LoadConfigFrom("config.yaml", "/etc/ordering/config.yaml")
}

// LoadConfigFrom loads configuration from environment variables and the given
// YAML files. Missing files are skipped.
func LoadConfigFrom(files ...string) (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "ORDERS",
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values aconfig cannot check by itself.
func (c Config) Validate() error {
	var storageErr, levelErr, ttlErr error

	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		storageErr = fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage)
	}
	if _, err := c.SlogLevel(); err != nil {
		levelErr = err
	}
	if c.StaleOrders.TTL < 0 {
		ttlErr = errors.New("stale orders ttl must not be negative")
	}

	return errors.Join(storageErr, levelErr, ttlErr)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// HTTPAddr returns the address the HTTP server listens on.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

// DSN returns the PostgreSQL connection string in key=value form.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode,
	)
}
