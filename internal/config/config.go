package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"collabhub/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store  configs.Store  `envPrefix:"STORE_"`
	Auth   configs.Auth   `envPrefix:"AUTH_"`
	Notify configs.Notify `envPrefix:"NOTIFY_"`
	Kafka  configs.Kafka  `envPrefix:"KAFKA_"`
	Redis  configs.Redis  `envPrefix:"REDIS_"`
	Engine configs.Engine `envPrefix:"ENGINE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	switch c.Store.Driver {
	case configs.StoreDriverPostgres, configs.StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Notify.Driver {
	case configs.NotifyDriverKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("KAFKA_BROKERS and KAFKA_TOPIC are required for the kafka notifier")
		}
	case configs.NotifyDriverLog:
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	if c.Engine.NotifyAttempts < 1 {
		return fmt.Errorf("ENGINE_NOTIFY_ATTEMPTS must be at least 1")
	}
	if c.Engine.TransientRetries < 0 {
		return fmt.Errorf("ENGINE_TRANSIENT_RETRIES must not be negative")
	}
	return nil
}
