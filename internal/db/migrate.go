package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"collabhub/db/migrations"
)

// ErrSchemaAhead reports a database migrated past the version this build
// ships, usually by a newer release that was rolled back.
var ErrSchemaAhead = errors.New("schema is newer than this build")

// Migrate upgrades the schema at addr to migrations.Version and returns the
// version it started from (0 for an empty database) and the version it left.
// It never migrates down and never forces a dirty schema.
func Migrate(addr string) (from, to uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	from, err = currentVersion(mg)
	if err != nil {
		return 0, 0, err
	}
	if err = planUpgrade(from, migrations.Version); err != nil {
		return from, from, err
	}
	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, from, fmt.Errorf("upgrade schema from %d to %d: %w", from, migrations.Version, err)
	}
	return from, migrations.Version, nil
}

type versioner interface {
	Version() (uint, bool, error)
}

func currentVersion(v versioner) (uint, error) {
	version, dirty, err := v.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return version, fmt.Errorf("schema is dirty at version %d, repair it and run migrate force", version)
	}
	return version, nil
}

func planUpgrade(from, target uint) error {
	if from > target {
		return fmt.Errorf("%w: database at %d, build expects %d", ErrSchemaAhead, from, target)
	}
	return nil
}
