package config

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.EqualValues(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "log", cfg.Notify.Driver)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Engine.StoreTimeout)
	assert.Equal(t, 2*time.Second, cfg.Engine.NotifyTimeout)
	assert.Equal(t, 3, cfg.Engine.NotifyAttempts)
	assert.Equal(t, 2, cfg.Engine.TransientRetries)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("NOTIFY_DRIVER", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ENGINE_STORE_TIMEOUT", "750ms")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 750*time.Millisecond, cfg.Engine.StoreTimeout)
	_, isJSON := cfg.Log.NewHandler(io.Discard).(*slog.JSONHandler)
	assert.True(t, isJSON)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("AUTH_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("AUTH_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})
	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("AUTH_SECRET", "s3cret")
		t.Setenv("LOG_FORMAT", "logfmt")
		_, err := Load()
		assert.ErrorContains(t, err, "LOG_FORMAT")
	})
	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("AUTH_SECRET", "s3cret")
		t.Setenv("LOG_LEVEL", "verbose")
		_, err := Load()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
	t.Run("zero notify attempts", func(t *testing.T) {
		t.Setenv("AUTH_SECRET", "s3cret")
		t.Setenv("ENGINE_NOTIFY_ATTEMPTS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "NOTIFY_ATTEMPTS")
	})
}

func TestLoggerHandlerLevel(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "Warn")

	cfg, err := Load()
	require.NoError(t, err)

	h := cfg.Log.NewHandler(io.Discard)
	assert.IsType(t, &slog.TextHandler{}, h)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
}
