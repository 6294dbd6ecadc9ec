package tracing_test

import (
	"context"
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/tracing"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	t.Parallel()
	shutdown, err := tracing.Init(context.Background(), tracing.Config{}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInit_Exporter(t *testing.T) {
	t.Parallel()
	shutdown, err := tracing.Init(context.Background(), tracing.Config{Endpoint: "localhost:4318", Insecure: true, Ratio: 0.5}, "test")
	require.NoError(t, err)
	// nothing was recorded, so shutdown does not reach the collector
	require.NoError(t, shutdown(context.Background()))
}
