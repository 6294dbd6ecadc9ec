package service

import (
	"context"
	"strings"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	libraryRepo "github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultRecentLoans = 10
	maxListLimit       = 100
)

// OpenLoan lends one copy of a book. The book row stays locked until commit,
// so concurrent loans of the last copy serialize and all but one fail.
func (s *Service) OpenLoan(ctx context.Context, req model.OpenLoanRequest) (model.LoanDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.OpenLoan", trace.WithAttributes(
		attribute.Int64("patron.id", req.PatronID),
		attribute.Int64("book.id", req.BookID),
	))
	defer span.End()

	today := s.today()
	due := today.AddDays(s.policy.LoanPeriodDays)
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := parseDate("dueDate", *req.DueDate)
		if err != nil {
			return model.LoanDetails{}, err
		}
		if d.Before(today) {
			return model.LoanDetails{}, errs.Validation("due date %s is before loan date %s", d, today)
		}
		due = d
	}

	var loan model.LoanDetails
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		patron, err := tx.GetPatron(ctx, req.PatronID)
		if err != nil {
			return err
		}
		if !patron.Active {
			return errs.Conflict("patron %d is inactive", patron.ID)
		}
		book, err := tx.LockBook(ctx, req.BookID)
		if err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return errs.Conflict("book %d has no available copies", book.ID)
		}
		dup, err := tx.HasActiveLoan(ctx, patron.ID, book.ID)
		if err != nil {
			return err
		}
		if dup {
			return errs.Conflict("patron %d already has an active loan for book %d", patron.ID, book.ID)
		}
		if s.policy.MaxActiveLoans > 0 {
			n, err := tx.CountActiveLoansByPatron(ctx, patron.ID)
			if err != nil {
				return err
			}
			if n >= s.policy.MaxActiveLoans {
				return errs.Conflict("patron %d reached the limit of %d active loans", patron.ID, s.policy.MaxActiveLoans)
			}
		}

		id, err := tx.CreateLoan(ctx, model.Loan{
			PatronID: patron.ID,
			BookID:   book.ID,
			LoanDate: today,
			DueDate:  due,
		})
		if err != nil {
			return err
		}
		if err = tx.AdjustAvailable(ctx, book.ID, -1); err != nil {
			return err
		}

		// the patron's own hold on this book is consumed by the loan
		hold, err := tx.ActiveReservation(ctx, book.ID)
		if err != nil {
			return err
		}
		if hold != nil && hold.PatronID == patron.ID {
			fulfilled := model.ReservationFulfilled
			if err = tx.UpdateReservation(ctx, hold.ID, model.ReservationChange{Status: &fulfilled}); err != nil {
				return err
			}
		}

		loan, err = tx.GetLoan(ctx, id)
		return err
	})
	if err != nil {
		return model.LoanDetails{}, s.fail(span, "OpenLoan", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:   kafka.ActionLoanOpened,
		LoanID:   loan.ID,
		PatronID: loan.PatronID,
		BookID:   loan.BookID,
		Details:  "due " + loan.DueDate.String(),
	})
	return loan, nil
}

// CloseLoan returns the copy and assesses the overdue fine.
func (s *Service) CloseLoan(ctx context.Context, id int64) (model.LoanDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.CloseLoan", trace.WithAttributes(attribute.Int64("loan.id", id)))
	defer span.End()

	today := s.today()
	var loan model.LoanDetails
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		cur, err := tx.LockLoan(ctx, id)
		if err != nil {
			return err
		}
		if cur.Status != model.LoanActive {
			return errs.Conflict("loan %d was already returned", id)
		}
		fine := s.policy.Fine(cur.DueDate, today)
		if cur.Waived {
			fine = decimal.Zero
		}
		if err = tx.CloseLoan(ctx, id, model.LoanClose{ReturnDate: today, Fine: fine}); err != nil {
			return err
		}
		if err = tx.AdjustAvailable(ctx, cur.BookID, 1); err != nil {
			return err
		}
		loan, err = tx.GetLoan(ctx, id)
		return err
	})
	if err != nil {
		return model.LoanDetails{}, s.fail(span, "CloseLoan", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:   kafka.ActionLoanClosed,
		LoanID:   loan.ID,
		PatronID: loan.PatronID,
		BookID:   loan.BookID,
		Amount:   loan.FineAmount.StringFixed(2),
	})
	return loan, nil
}

// WaiveFine zeroes the fine of any unpaid loan, active or returned, and keeps
// the zeroed amount in waived_amount.
func (s *Service) WaiveFine(ctx context.Context, id int64, reason string) (model.LoanDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.WaiveFine", trace.WithAttributes(attribute.Int64("loan.id", id)))
	defer span.End()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.LoanDetails{}, errs.Validation("waiver reason is required")
	}

	today := s.today()
	var loan model.LoanDetails
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		cur, err := tx.LockLoan(ctx, id)
		if err != nil {
			return err
		}
		if cur.PaidDate != nil {
			return errs.Conflict("fine for loan %d is already paid", id)
		}
		amount := cur.FineAmount
		if cur.Status == model.LoanActive {
			amount = s.policy.Fine(cur.DueDate, today)
		}
		if cur.Waived {
			amount = decimal.Max(amount, cur.WaivedAmount)
		}
		if err = tx.WaiveFine(ctx, id, model.Waiver{Reason: reason, Date: today, Amount: amount}); err != nil {
			return err
		}
		loan, err = tx.GetLoan(ctx, id)
		return err
	})
	if err != nil {
		return model.LoanDetails{}, s.fail(span, "WaiveFine", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:   kafka.ActionFineWaived,
		LoanID:   loan.ID,
		PatronID: loan.PatronID,
		BookID:   loan.BookID,
		Amount:   loan.WaivedAmount.StringFixed(2),
		Details:  reason,
	})
	return loan, nil
}

// RecordPayment settles a fine. An active overdue loan is closed by the same
// transaction and its copy returned to inventory.
func (s *Service) RecordPayment(ctx context.Context, id int64, req model.PaymentRequest) (model.LoanDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.RecordPayment", trace.WithAttributes(attribute.Int64("loan.id", id)))
	defer span.End()

	switch req.Method {
	case model.PaymentCash, model.PaymentCard, model.PaymentPix, model.PaymentTransfer:
	default:
		return model.LoanDetails{}, errs.Validation("invalid payment method %q", req.Method)
	}
	ref := "RCPT-" + ulid.Make().String()
	if req.ReceiptRef != nil && strings.TrimSpace(*req.ReceiptRef) != "" {
		ref = strings.TrimSpace(*req.ReceiptRef)
	}

	today := s.today()
	var (
		loan   model.LoanDetails
		closed bool
	)
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		cur, err := tx.LockLoan(ctx, id)
		if err != nil {
			return err
		}
		if cur.PaidDate != nil {
			return errs.Conflict("fine for loan %d is already paid", id)
		}
		if cur.Waived {
			return errs.Conflict("nothing to pay: fine for loan %d was waived", id)
		}

		amount := cur.FineAmount
		if cur.Status == model.LoanActive {
			amount = s.policy.Fine(cur.DueDate, today)
		}
		if !amount.IsPositive() {
			return errs.Conflict("nothing to pay for loan %d", id)
		}

		if cur.Status == model.LoanActive {
			if err = tx.CloseLoan(ctx, id, model.LoanClose{ReturnDate: today, Fine: amount}); err != nil {
				return err
			}
			if err = tx.AdjustAvailable(ctx, cur.BookID, 1); err != nil {
				return err
			}
			closed = true
		}
		if err = tx.RecordPayment(ctx, id, model.Payment{
			Method:     req.Method,
			Date:       today,
			ReceiptRef: ref,
			Amount:     amount,
		}); err != nil {
			return err
		}
		loan, err = tx.GetLoan(ctx, id)
		return err
	})
	if err != nil {
		return model.LoanDetails{}, s.fail(span, "RecordPayment", err)
	}

	if closed {
		s.publish(ctx, kafka.AuditEvent{
			Action:   kafka.ActionLoanClosed,
			LoanID:   loan.ID,
			PatronID: loan.PatronID,
			BookID:   loan.BookID,
			Amount:   loan.FineAmount.StringFixed(2),
			Details:  "closed by payment",
		})
	}
	s.publish(ctx, kafka.AuditEvent{
		Action:   kafka.ActionFinePaid,
		LoanID:   loan.ID,
		PatronID: loan.PatronID,
		BookID:   loan.BookID,
		Amount:   loan.FineAmount.StringFixed(2),
		Details:  string(req.Method) + " " + ref,
	})
	return loan, nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.LoanDetails, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context, f model.LoanFilter) ([]model.LoanDetails, error) {
	switch f.Status {
	case "", model.LoanActive, model.LoanReturned:
	default:
		return nil, errs.Validation("invalid loan status %q", f.Status)
	}
	if f.Limit <= 0 || f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	f.Today = s.today()
	return s.repo.ListLoans(ctx, f)
}

func (s *Service) RecentLoans(ctx context.Context, limit int) ([]model.LoanDetails, error) {
	if limit <= 0 {
		limit = defaultRecentLoans
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListLoans(ctx, model.LoanFilter{Limit: limit, Today: s.today()})
}

func (s *Service) ListPatronLoans(ctx context.Context, patronID int64) ([]model.LoanDetails, error) {
	if _, err := s.repo.GetPatron(ctx, patronID); err != nil {
		return nil, err
	}
	return s.repo.ListLoans(ctx, model.LoanFilter{Status: model.LoanActive, PatronID: patronID, Today: s.today()})
}
