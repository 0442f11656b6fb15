package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type stubMigrator struct{ up, down error }

func (s stubMigrator) Up() error   { return s.up }
func (s stubMigrator) Down() error { return s.down }

// happySeams wires every seam to succeed, handing migrations to m.
func happySeams(t *testing.T, m migrateInstance) {
	t.Helper()
	origOpen, origWith, origIofs, origNew := sqlOpenDB, postgresWithInstanceFn, iofsNewFn, migrateNewWithInstance
	t.Cleanup(func() {
		sqlOpenDB, postgresWithInstanceFn, iofsNewFn, migrateNewWithInstance = origOpen, origWith, origIofs, origNew
	})
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	orig := pgxpoolNew
	t.Cleanup(func() { pgxpoolNew = orig })

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("refused") }
	_, err := NewPgxPool(context.Background(), "postgres://x")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "postgres://x")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestRunMigrations(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		happySeams(t, stubMigrator{})
		require.NoError(t, RunMigrations("url"))
	})

	t.Run("no change is not an error", func(t *testing.T) {
		happySeams(t, stubMigrator{up: migrate.ErrNoChange})
		require.NoError(t, RunMigrations("url"))
	})

	t.Run("up failure", func(t *testing.T) {
		happySeams(t, stubMigrator{up: errors.New("dirty schema")})
		require.Error(t, RunMigrations("url"))
	})

	t.Run("seam failures", func(t *testing.T) {
		happySeams(t, stubMigrator{})
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RunMigrations("url"))

		happySeams(t, stubMigrator{})
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) {
			return nil, errors.New("driver")
		}
		require.Error(t, RunMigrations("url"))

		happySeams(t, stubMigrator{})
		iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("source") }
		require.Error(t, RunMigrations("url"))

		happySeams(t, stubMigrator{})
		migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
			return nil, errors.New("instance")
		}
		require.Error(t, RunMigrations("url"))
	})
}

func TestRollbackAll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		happySeams(t, stubMigrator{})
		require.NoError(t, RollbackAll("url"))
	})

	t.Run("no change is not an error", func(t *testing.T) {
		happySeams(t, stubMigrator{down: migrate.ErrNoChange})
		require.NoError(t, RollbackAll("url"))
	})

	t.Run("down failure", func(t *testing.T) {
		happySeams(t, stubMigrator{down: errors.New("locked")})
		require.Error(t, RollbackAll("url"))
	})
}
