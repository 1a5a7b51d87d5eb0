package db

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/db/migrations"
)

type stubVersioner struct {
	version uint
	dirty   bool
	err     error
}

func (s stubVersioner) Version() (uint, bool, error) { return s.version, s.dirty, s.err }

func TestCurrentVersion(t *testing.T) {
	v, err := currentVersion(stubVersioner{err: migrate.ErrNilVersion})
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = currentVersion(stubVersioner{version: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	_, err = currentVersion(stubVersioner{version: 1, dirty: true})
	assert.ErrorContains(t, err, "dirty at version 1")

	boom := errors.New("connection reset")
	_, err = currentVersion(stubVersioner{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestPlanUpgradeRefusesDowngrade(t *testing.T) {
	assert.NoError(t, planUpgrade(0, migrations.Version))
	assert.NoError(t, planUpgrade(migrations.Version, migrations.Version))
	assert.ErrorIs(t, planUpgrade(migrations.Version+1, migrations.Version), ErrSchemaAhead)
}

func TestEmbeddedMigrationsCoverVersion(t *testing.T) {
	for v := uint(1); v <= migrations.Version; v++ {
		for _, dir := range []string{"up", "down"} {
			matches, err := fs.Glob(migrations.FS, fmt.Sprintf("%06d_*.%s.sql", v, dir))
			require.NoError(t, err)
			assert.Len(t, matches, 1, "version %d %s", v, dir)
		}
	}
}
