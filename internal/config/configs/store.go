package configs

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the persistence backend. The memory driver keeps everything
// in-process and is meant for local runs.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// Seed loads demo influencers and campaigns on startup.
	Seed bool `env:"SEED" envDefault:"false"`
}
