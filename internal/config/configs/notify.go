package configs

const (
	NotifyDriverKafka = "kafka"
	NotifyDriverLog   = "log"
)

// Notify selects the notification emitter. The log driver writes
// notifications to the structured log instead of a broker.
type Notify struct {
	Driver string `env:"DRIVER" envDefault:"log"`
}

// Kafka configures the notification topic writer.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"collabhub.notifications"`
}

// Redis configures the delivery-gap list. An empty Addr disables gap
// recording; failed deliveries are then only logged.
type Redis struct {
	Addr   string `env:"ADDR"`
	GapKey string `env:"GAP_KEY" envDefault:"collabhub:notifications:gaps"`
}
