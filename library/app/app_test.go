package app_test

import (
	"testing"

	"github.com/FortunatoE/SistemaBiblioteca/library/app"
	"github.com/FortunatoE/SistemaBiblioteca/library/config"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	t.Parallel()
	p, err := app.NewPolicy(config.Policy{
		LoanPeriodDays: 21, DailyFineRate: "1.50", HoldMinDays: 1, HoldMaxDays: 5, MaxActiveLoans: 0,
	})
	require.NoError(t, err)
	require.Equal(t, 21, p.LoanPeriodDays)
	require.Equal(t, "1.50", p.DailyFineRate.StringFixed(2))

	_, err = app.NewPolicy(config.Policy{LoanPeriodDays: 15, DailyFineRate: "two", HoldMinDays: 1, HoldMaxDays: 7})
	require.Error(t, err)

	_, err = app.NewPolicy(config.Policy{LoanPeriodDays: 0, DailyFineRate: "2.00", HoldMinDays: 1, HoldMaxDays: 7})
	require.ErrorIs(t, err, errs.ErrValidation)
}
