package repository

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var reservationColumns = []string{
	"id", "patron_id", "book_id", "reservation_date", "expiry_date", "status", "notes", "created_at",
}

func reservationDetailsQuery() sq.SelectBuilder {
	cols := append(prefixed("r", reservationColumns),
		"p.name as patron_name",
		"p.registration as patron_registration",
		"b.title as book_title",
		"b.author as book_author",
	)
	return qb.Select(cols...).
		From(reservationsTableName + " r").
		Join(patronsTableName + " p on p.id = r.patron_id").
		Join(booksTableName + " b on b.id = r.book_id")
}

func (r *repository) CreateReservation(ctx context.Context, res model.Reservation) (int64, error) {
	query, args, err := qb.Insert(reservationsTableName).
		Columns("patron_id", "book_id", "reservation_date", "expiry_date", "status", "notes").
		Values(res.PatronID, res.BookID, res.ReservationDate, res.ExpiryDate, model.ReservationActive, res.Notes).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapErr(err, "CreateReservation")
	}
	return id, nil
}

func (r *repository) GetReservation(ctx context.Context, id int64) (model.ReservationDetails, error) {
	query, args, err := reservationDetailsQuery().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return model.ReservationDetails{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ReservationDetails{}, mapErr(err, "GetReservation")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ReservationDetails])
	if err != nil {
		return model.ReservationDetails{}, notFoundOr(err, "GetReservation", "reservation %d not found", id)
	}
	return res, nil
}

func (r *repository) LockReservation(ctx context.Context, id int64) (model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Reservation{}, mapErr(err, "LockReservation")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return model.Reservation{}, notFoundOr(err, "LockReservation", "reservation %d not found", id)
	}
	return res, nil
}

func (r *repository) ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error) {
	q := reservationDetailsQuery().OrderBy("r.reservation_date desc", "r.status", "r.id desc")
	if f.Status != "" {
		q = q.Where(sq.Eq{"r.status": f.Status})
	}
	if f.PatronID != 0 {
		q = q.Where(sq.Eq{"r.patron_id": f.PatronID})
	}
	if f.BookID != 0 {
		q = q.Where(sq.Eq{"r.book_id": f.BookID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, "ListReservations")
	}
	defer rows.Close()

	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ReservationDetails])
	if err != nil {
		return nil, mapErr(err, "ListReservations.CollectRows")
	}
	return list, nil
}

func (r *repository) ActiveReservation(ctx context.Context, bookID int64) (*model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"book_id": bookID, "status": model.ReservationActive}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, "ActiveReservation")
	}
	defer rows.Close()

	res, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapErr(err, "ActiveReservation")
	}
	return res, nil
}

func (r *repository) ExpireReservations(ctx context.Context, bookID int64, today model.Date) (int64, error) {
	q := `
update reservations
    set status = 'expired'
where book_id = @book_id and status = 'active' and expiry_date < @today`
	args := pgx.NamedArgs{
		"book_id": bookID,
		"today":   today,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, mapErr(err, "ExpireReservations")
	}
	return tag.RowsAffected(), nil
}

func (r *repository) UpdateReservation(ctx context.Context, id int64, c model.ReservationChange) error {
	set := map[string]any{}
	if c.Status != nil {
		set["status"] = *c.Status
	}
	if c.ExpiryDate != nil {
		set["expiry_date"] = *c.ExpiryDate
	}
	if c.Notes != nil {
		set["notes"] = *c.Notes
	}
	if len(set) == 0 {
		return errs.Validation("no fields to update")
	}
	query, args, err := qb.Update(reservationsTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err, "UpdateReservation")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("reservation %d not found", id)
	}
	return nil
}

func (r *repository) DeleteReservation(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(reservationsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err, "DeleteReservation")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("reservation %d not found", id)
	}
	return nil
}
