package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ordering/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfigFrom()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, cfg.Storage)
	assert.Equal(t, "orders.order-changed", cfg.Kafka.OrderChangedTopic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Zero(t, cfg.StaleOrders.TTL)
	assert.Equal(t, "0 * * * * *", cfg.StaleOrders.Schedule)
	assert.Equal(t, 10*time.Second, cfg.Graceful.ShutdownTimeout)
	assert.True(t, cfg.DB.MigrateOnStart)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
}

func TestLoadConfigFrom_Environment(t *testing.T) {
	t.Setenv("ORDERS_HTTP_PORT", "9090")
	t.Setenv("ORDERS_STORAGE", "postgres")
	t.Setenv("ORDERS_DB_HOST", "db")
	t.Setenv("ORDERS_STALE_ORDERS_TTL", "30m")
	t.Setenv("ORDERS_LOG_LEVEL", "debug")

	cfg, err := cmd.LoadConfigFrom()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, cmd.StoragePostgres, cfg.Storage)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 30*time.Minute, cfg.StaleOrders.TTL)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFrom_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"7070\"\nkafka:\n  brokers: \"k1:9092,k2:9092\"\n"), 0o600))

	cfg, err := cmd.LoadConfigFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
	assert.Equal(t, "k1:9092,k2:9092", cfg.Kafka.Brokers)
}

func TestLoadConfigFrom_InvalidStorage(t *testing.T) {
	t.Setenv("ORDERS_STORAGE", "redis")

	_, err := cmd.LoadConfigFrom()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.Config{Storage: cmd.StorageMemory, LogLevel: "loud", StaleOrders: cmd.StaleOrdersConfig{TTL: -time.Second}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "ttl")
}

func TestDBConfig_DSN(t *testing.T) {
	db := cmd.DBConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SslMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}
