package service

import (
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var epoch = model.NewDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

func TestPolicy_Fine(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()

	require.True(t, p.Fine(epoch, epoch).IsZero())
	require.True(t, p.Fine(epoch, epoch.AddDays(-3)).IsZero())
	require.Equal(t, "40.00", p.Fine(epoch, epoch.AddDays(20)).StringFixed(2))

	rapid.Check(t, func(t *rapid.T) {
		dueOff := rapid.IntRange(-400, 400).Draw(t, "due")
		onOff := rapid.IntRange(-400, 400).Draw(t, "on")
		due, on := epoch.AddDays(dueOff), epoch.AddDays(onOff)

		fine := p.Fine(due, on)
		if fine.IsNegative() {
			t.Fatalf("negative fine %s", fine)
		}
		want := decimal.Zero
		if onOff > dueOff {
			want = p.DailyFineRate.Mul(decimal.NewFromInt(int64(onOff - dueOff)))
		}
		if !fine.Equal(want) {
			t.Fatalf("fine(%s, %s) = %s, want %s", due, on, fine, want)
		}
		if later := p.Fine(due, on.AddDays(1)); later.LessThan(fine) {
			t.Fatalf("fine decreased from %s to %s", fine, later)
		}
	})
}

func TestPolicy_ValidateHold(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()

	rapid.Check(t, func(t *rapid.T) {
		start := epoch.AddDays(rapid.IntRange(0, 730).Draw(t, "start"))
		days := rapid.IntRange(-10, 20).Draw(t, "days")

		err := p.ValidateHold(start, start.AddDays(days))
		ok := days >= p.HoldMinDays && days <= p.HoldMaxDays
		if ok && err != nil {
			t.Fatalf("window of %d days rejected: %v", days, err)
		}
		if !ok && errs.KindOf(err) != errs.KindValidation {
			t.Fatalf("window of %d days accepted", days)
		}
	})
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultPolicy().Validate())

	p := DefaultPolicy()
	p.HoldMaxDays = 0
	require.ErrorIs(t, p.Validate(), errs.ErrValidation)

	p = DefaultPolicy()
	p.DailyFineRate = decimal.NewFromInt(-1)
	require.ErrorIs(t, p.Validate(), errs.ErrValidation)
}

func TestPolicy_ClassifyFine(t *testing.T) {
	t.Parallel()
	p := DefaultPolicy()
	today := epoch.AddDays(30)
	returned := epoch.AddDays(20)

	tests := []struct {
		name   string
		loan   model.Loan
		status model.FineStatus
		amount string
		days   int
	}{
		{
			name:   "active not due",
			loan:   model.Loan{Status: model.LoanActive, DueDate: today},
			status: model.FineNone,
			amount: "0",
		},
		{
			name:   "active overdue accrues",
			loan:   model.Loan{Status: model.LoanActive, DueDate: today.AddDays(-6)},
			status: model.FinePending,
			amount: "12",
			days:   6,
		},
		{
			name:   "returned late unpaid",
			loan:   model.Loan{Status: model.LoanReturned, DueDate: epoch.AddDays(15), ReturnDate: &returned, FineAmount: decimal.NewFromInt(10)},
			status: model.FinePending,
			amount: "10",
			days:   5,
		},
		{
			name:   "waived wins over paid",
			loan:   model.Loan{Status: model.LoanReturned, DueDate: epoch.AddDays(15), ReturnDate: &returned, Waived: true, WaivedAmount: decimal.NewFromInt(10), PaidDate: &returned},
			status: model.FineWaived,
			amount: "10",
			days:   5,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := p.ClassifyFine(model.LoanDetails{Loan: tt.loan}, today)
			require.Equal(t, tt.status, e.FineStatus)
			require.True(t, decimal.RequireFromString(tt.amount).Equal(e.Amount), e.Amount.String())
			require.Equal(t, tt.days, e.OverdueDays)
		})
	}
}
