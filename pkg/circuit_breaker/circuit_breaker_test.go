package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	t.Run("stays closed on success", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Second, 0.3, 2)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(successfulService))
		}
		require.Equal(t, circuit_breaker.Closed, cb.State())
	})

	t.Run("opens after failure ratio", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Hour, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.Error(t, cb.Call(failingService))
		}
		require.Equal(t, circuit_breaker.Open, cb.State())
		require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
	})

	t.Run("half-open recovers", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 2)
		require.Error(t, cb.Call(failingService))
		require.Error(t, cb.Call(failingService))
		require.Equal(t, circuit_breaker.Open, cb.State())

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, circuit_breaker.HalfOpen, cb.State())
		require.NoError(t, cb.Call(successfulService))
		require.Equal(t, circuit_breaker.Closed, cb.State())
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(2, 10*time.Millisecond, 0.5, 2)
		require.Error(t, cb.Call(failingService))
		require.Equal(t, circuit_breaker.Open, cb.State())

		time.Sleep(20 * time.Millisecond)
		require.Error(t, cb.Call(failingService))
		require.Equal(t, circuit_breaker.Open, cb.State())
	})
}
