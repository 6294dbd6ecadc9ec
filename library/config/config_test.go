package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
policy:
  loanPeriodDays: 21
  dailyFineRate: "1.50"
kafka:
  addrs: ["kafka:9092"]
`), 0o600))
	t.Setenv("HOLD_MAX_DAYS", "5")

	cfg, err := load(path, WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, 21, cfg.Policy.LoanPeriodDays)
	require.Equal(t, "1.50", cfg.Policy.DailyFineRate)
	require.Equal(t, 1, cfg.Policy.HoldMinDays)
	require.Equal(t, 5, cfg.Policy.HoldMaxDays)
	require.Equal(t, 5, cfg.Policy.MaxActiveLoans)
	require.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Addrs)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)
	require.Equal(t, 15, cfg.Policy.LoanPeriodDays)
	require.Equal(t, "2.00", cfg.Policy.DailyFineRate)
	require.Equal(t, 7, cfg.Policy.HoldMaxDays)
	require.False(t, cfg.Kafka.Enabled())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
