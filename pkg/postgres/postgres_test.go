package postgres_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestDB_ConnString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  postgres.DB
		want string
	}{
		{
			name: "fields",
			cfg:  postgres.DB{Host: "db", Port: "5432", User: "library", Password: "p@ss", NameDB: "library"},
			want: "postgres://library:p%40ss@db:5432/library?sslmode=disable",
		},
		{
			name: "dsn wins",
			cfg:  postgres.DB{Host: "db", DSN: "postgres://x@y/z"},
			want: "postgres://x@y/z",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.cfg.ConnString())
		})
	}
}

func TestMigrate_WrapsGooseError(t *testing.T) {
	pool, err := pgxpool.New(context.Background(), "postgres://u:p@127.0.0.1:1/library?sslmode=disable&connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrations := fstest.MapFS{
		"00001_init.sql": {Data: []byte("-- +goose Up\nselect 1;\n")},
	}
	err = postgres.Migrate(pool, migrations)
	require.Error(t, err)
	require.Contains(t, err.Error(), "goose.Up")
}
