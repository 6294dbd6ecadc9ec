package service

import (
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/shopspring/decimal"
)

// Policy holds the circulation rules.
type Policy struct {
	LoanPeriodDays int
	DailyFineRate  decimal.Decimal
	HoldMinDays    int
	HoldMaxDays    int
	// MaxActiveLoans of zero means no limit.
	MaxActiveLoans int
}

func DefaultPolicy() Policy {
	return Policy{
		LoanPeriodDays: 15,
		DailyFineRate:  decimal.RequireFromString("2.00"),
		HoldMinDays:    1,
		HoldMaxDays:    7,
		MaxActiveLoans: 5,
	}
}

func (p Policy) Validate() error {
	switch {
	case p.LoanPeriodDays < 1:
		return errs.Validation("loan period must be at least one day")
	case p.DailyFineRate.IsNegative():
		return errs.Validation("daily fine rate cannot be negative")
	case p.HoldMinDays < 1 || p.HoldMaxDays < p.HoldMinDays:
		return errs.Validation("hold window [%d, %d] is invalid", p.HoldMinDays, p.HoldMaxDays)
	case p.MaxActiveLoans < 0:
		return errs.Validation("max active loans cannot be negative")
	}
	return nil
}

// OverdueDays counts whole calendar days past due, never negative.
func (p Policy) OverdueDays(due, on model.Date) int {
	if d := due.DaysUntil(on); d > 0 {
		return d
	}
	return 0
}

func (p Policy) Fine(due, on model.Date) decimal.Decimal {
	return p.DailyFineRate.Mul(decimal.NewFromInt(int64(p.OverdueDays(due, on))))
}

// ValidateHold checks the reservation window in whole days.
func (p Policy) ValidateHold(reservation, expiry model.Date) error {
	if !expiry.After(reservation) {
		return errs.Validation("expiry date must be after reservation date")
	}
	days := reservation.DaysUntil(expiry)
	if days > p.HoldMaxDays {
		return errs.Validation("expiry date cannot be more than %d days after reservation date, got %d", p.HoldMaxDays, days)
	}
	if days < p.HoldMinDays {
		return errs.Validation("expiry date must be at least %d days after reservation date", p.HoldMinDays)
	}
	return nil
}

// ClassifyFine places a loan in the fine ledger: waived, then paid, then
// pending, else none.
func (p Policy) ClassifyFine(l model.LoanDetails, today model.Date) model.FineEntry {
	e := model.FineEntry{LoanDetails: l, FineStatus: model.FineNone, Amount: decimal.Zero}
	end := today
	if l.ReturnDate != nil {
		end = *l.ReturnDate
	}
	e.OverdueDays = p.OverdueDays(l.DueDate, end)

	switch {
	case l.Waived:
		e.FineStatus = model.FineWaived
		e.Amount = l.WaivedAmount
	case l.PaidDate != nil:
		e.FineStatus = model.FinePaid
		e.Amount = l.FineAmount
	case l.Status == model.LoanActive && l.DueDate.Before(today):
		e.FineStatus = model.FinePending
		e.Amount = p.Fine(l.DueDate, today)
	case l.FineAmount.IsPositive():
		e.FineStatus = model.FinePending
		e.Amount = l.FineAmount
	}
	return e
}
