package configs

import "time"

// Engine holds the resource bounds applied by the use cases and the HTTP
// boundary.
type Engine struct {
	StoreTimeout   time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
	NotifyTimeout  time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"2s"`
	NotifyAttempts int           `env:"NOTIFY_ATTEMPTS" envDefault:"3"`
	NotifyBackoff  time.Duration `env:"NOTIFY_BACKOFF" envDefault:"100ms"`
	// TransientRetries is how many times the HTTP boundary retries a
	// transient failure before answering 503.
	TransientRetries int `env:"TRANSIENT_RETRIES" envDefault:"2"`
}
