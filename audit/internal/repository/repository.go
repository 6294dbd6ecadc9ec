package repository

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/audit/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/pkg/kafka"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	Store(ctx context.Context, ev kafka.AuditEvent) error
	List(ctx context.Context, f model.Filter) ([]model.Event, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Store is idempotent on the event id, so redelivered messages are dropped.
func (r *repository) Store(ctx context.Context, ev kafka.AuditEvent) error {
	q := `insert into events (id, occurred_at, action, loan_id, reservation_id, patron_id, book_id, amount, details)
	values (@id, @occurred_at, @action, @loan_id, @reservation_id, @patron_id, @book_id, @amount, @details)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":             ev.ID,
		"occurred_at":    ev.OccurredAt,
		"action":         string(ev.Action),
		"loan_id":        nullID(ev.LoanID),
		"reservation_id": nullID(ev.ReservationID),
		"patron_id":      ev.PatronID,
		"book_id":        ev.BookID,
		"amount":         nullAmount(ev.Amount),
		"details":        nullString(ev.Details),
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return errors.Wrap(err, "repo.Store")
	}
	return nil
}

func (r *repository) List(ctx context.Context, f model.Filter) ([]model.Event, error) {
	q := qb.Select("id", "occurred_at", "action", "loan_id", "reservation_id",
		"patron_id", "book_id", "amount::text as amount", "details").
		From("events").
		OrderBy("occurred_at desc", "id desc").
		Limit(uint64(f.Limit))
	if f.PatronID != 0 {
		q = q.Where(sq.Eq{"patron_id": f.PatronID})
	}
	if f.Action != "" {
		q = q.Where(sq.Eq{"action": f.Action})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "repo.List")
	}
	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return events, nil
}

func nullID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

// nullAmount stores an unparsable amount as NULL rather than dropping the event.
func nullAmount(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
