package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	libraryRepo "github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CreateReservation places a hold. Holds never touch inventory; the book row
// lock only serializes competing holds on the same title.
func (s *Service) CreateReservation(ctx context.Context, req model.ReservationRequest) (model.ReservationDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.CreateReservation", trace.WithAttributes(
		attribute.Int64("patron.id", req.PatronID),
		attribute.Int64("book.id", req.BookID),
	))
	defer span.End()

	today := s.today()
	reserved := today
	if req.ReservationDate != "" {
		d, err := parseDate("reservationDate", req.ReservationDate)
		if err != nil {
			return model.ReservationDetails{}, err
		}
		reserved = d
	}
	expiry, err := parseDate("expiryDate", req.ExpiryDate)
	if err != nil {
		return model.ReservationDetails{}, err
	}
	if err = s.policy.ValidateHold(reserved, expiry); err != nil {
		return model.ReservationDetails{}, err
	}
	if expiry.Before(today) {
		return model.ReservationDetails{}, errs.Validation("expiry date %s is in the past", expiry)
	}

	var res model.ReservationDetails
	err = s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
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
		if _, err = tx.ExpireReservations(ctx, book.ID, today); err != nil {
			return err
		}
		if book.AvailableCopies <= 0 {
			return errs.Conflict("book %d is not available for reservation", book.ID)
		}
		hold, err := tx.ActiveReservation(ctx, book.ID)
		if err != nil {
			return err
		}
		if hold != nil {
			if hold.PatronID == patron.ID {
				return errs.Conflict("patron %d already has an active reservation for book %d", patron.ID, book.ID)
			}
			return errs.Conflict("book %d already has an active reservation", book.ID)
		}

		id, err := tx.CreateReservation(ctx, model.Reservation{
			PatronID:        patron.ID,
			BookID:          book.ID,
			ReservationDate: reserved,
			ExpiryDate:      expiry,
			Notes:           req.Notes,
		})
		if err != nil {
			return err
		}
		res, err = tx.GetReservation(ctx, id)
		return err
	})
	if err != nil {
		return model.ReservationDetails{}, s.fail(span, "CreateReservation", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:        kafka.ActionReservationCreated,
		ReservationID: res.ID,
		PatronID:      res.PatronID,
		BookID:        res.BookID,
		Details:       res.ReservationDate.String() + ".." + res.ExpiryDate.String(),
	})
	return res, nil
}

// UpdateReservation applies a partial update; at least one field is required.
func (s *Service) UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (model.ReservationDetails, error) {
	ctx, span := s.tracer.Start(ctx, "service.UpdateReservation", trace.WithAttributes(attribute.Int64("reservation.id", id)))
	defer span.End()

	if patch.Empty() {
		return model.ReservationDetails{}, errs.Validation("no fields to update")
	}
	today := s.today()
	change := model.ReservationChange{Notes: patch.Notes}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return model.ReservationDetails{}, errs.Validation(
				"invalid status %q, must be one of active, fulfilled, cancelled, expired", *patch.Status)
		}
		change.Status = patch.Status
	}
	if patch.ExpiryDate != nil {
		d, err := parseDate("expiryDate", *patch.ExpiryDate)
		if err != nil {
			return model.ReservationDetails{}, err
		}
		if !d.After(today) {
			return model.ReservationDetails{}, errs.Validation("expiry date must be in the future")
		}
		change.ExpiryDate = &d
	}

	var res model.ReservationDetails
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		reactivate := change.Status != nil && *change.Status == model.ReservationActive
		if reactivate {
			// book row first, the same order OpenLoan takes
			held, err := tx.GetReservation(ctx, id)
			if err != nil {
				return err
			}
			if _, err = tx.LockBook(ctx, held.BookID); err != nil {
				return err
			}
		}
		cur, err := tx.LockReservation(ctx, id)
		if err != nil {
			return err
		}
		if change.ExpiryDate != nil && !change.ExpiryDate.After(cur.ReservationDate) {
			return errs.Validation("expiry date must be after reservation date %s", cur.ReservationDate)
		}
		if reactivate && cur.Status != model.ReservationActive {
			hold, err := tx.ActiveReservation(ctx, cur.BookID)
			if err != nil {
				return err
			}
			if hold != nil && hold.ID != id {
				return errs.Conflict("book %d already has an active reservation", cur.BookID)
			}
		}
		if err = tx.UpdateReservation(ctx, id, change); err != nil {
			return err
		}
		res, err = tx.GetReservation(ctx, id)
		return err
	})
	if err != nil {
		return model.ReservationDetails{}, s.fail(span, "UpdateReservation", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:        kafka.ActionReservationUpdated,
		ReservationID: res.ID,
		PatronID:      res.PatronID,
		BookID:        res.BookID,
		Details:       string(res.Status),
	})
	return res, nil
}

// CancelReservation deletes the hold row.
func (s *Service) CancelReservation(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "service.CancelReservation", trace.WithAttributes(attribute.Int64("reservation.id", id)))
	defer span.End()

	var cur model.Reservation
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		var err error
		if cur, err = tx.LockReservation(ctx, id); err != nil {
			return err
		}
		return tx.DeleteReservation(ctx, id)
	})
	if err != nil {
		return s.fail(span, "CancelReservation", err)
	}

	s.publish(ctx, kafka.AuditEvent{
		Action:        kafka.ActionReservationCancelled,
		ReservationID: cur.ID,
		PatronID:      cur.PatronID,
		BookID:        cur.BookID,
	})
	return nil
}

func (s *Service) GetReservation(ctx context.Context, id int64) (model.ReservationDetails, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, errs.Validation("invalid reservation status %q", f.Status)
	}
	return s.repo.ListReservations(ctx, f)
}

func (s *Service) ListPatronReservations(ctx context.Context, patronID int64) ([]model.ReservationDetails, error) {
	if _, err := s.repo.GetPatron(ctx, patronID); err != nil {
		return nil, err
	}
	return s.repo.ListReservations(ctx, model.ReservationFilter{Status: model.ReservationActive, PatronID: patronID})
}
