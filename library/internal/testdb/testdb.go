// Package testdb opens an isolated, migrated Postgres schema for tests.
package testdb

import (
	"context"
	"os"
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/library/migrations"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DSNEnv = "LIBRARY_TEST_DSN"

// Open skips the test when LIBRARY_TEST_DSN is unset or unreachable.
// Each schema gets its own tables so packages can run concurrently.
func Open(t testing.TB, schema string) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres test", DSNEnv)
	}
	ctx := context.Background()

	admin, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Skipf("postgres unreachable: %v", err)
	}
	_, err = admin.Exec(ctx, "create schema if not exists "+pgx.Identifier{schema}.Sanitize())
	_ = admin.Close(ctx) //nolint:errcheck
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	cfg.MaxConns = 20

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool, migrations.MigrationFiles))
	Reset(t, pool)
	return pool
}

func Reset(t testing.TB, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`truncate reservations, loans, patrons, books restart identity cascade`)
	require.NoError(t, err)
}
