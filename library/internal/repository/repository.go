package repository

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// InTx runs fn inside one transaction; fn's repository is bound to it.
	InTx(ctx context.Context, fn func(repo Repository) error) error

	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	// LockBook reads the book row with FOR UPDATE.
	LockBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, in model.BookInput, available int) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	AdjustAvailable(ctx context.Context, bookID int64, delta int) error
	Categories(ctx context.Context) ([]string, error)

	CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error)
	GetPatron(ctx context.Context, id int64) (model.Patron, error)
	ListPatrons(ctx context.Context, f model.PatronFilter) ([]model.Patron, error)
	UpdatePatron(ctx context.Context, id int64, in model.PatronInput) (model.Patron, error)
	DeactivatePatron(ctx context.Context, id int64) error

	CreateLoan(ctx context.Context, loan model.Loan) (int64, error)
	GetLoan(ctx context.Context, id int64) (model.LoanDetails, error)
	// LockLoan reads the loan row with FOR UPDATE.
	LockLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.LoanDetails, error)
	HasActiveLoan(ctx context.Context, patronID, bookID int64) (bool, error)
	CountActiveLoansByPatron(ctx context.Context, patronID int64) (int, error)
	CountActiveLoansByBook(ctx context.Context, bookID int64) (int, error)
	CloseLoan(ctx context.Context, id int64, c model.LoanClose) error
	WaiveFine(ctx context.Context, id int64, w model.Waiver) error
	RecordPayment(ctx context.Context, id int64, p model.Payment) error
	ListFineCandidates(ctx context.Context, f model.FineFilter, today model.Date) ([]model.LoanDetails, error)

	CreateReservation(ctx context.Context, r model.Reservation) (int64, error)
	GetReservation(ctx context.Context, id int64) (model.ReservationDetails, error)
	LockReservation(ctx context.Context, id int64) (model.Reservation, error)
	ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error)
	// ActiveReservation returns the active hold on a book, or nil.
	ActiveReservation(ctx context.Context, bookID int64) (*model.Reservation, error)
	ExpireReservations(ctx context.Context, bookID int64, today model.Date) (int64, error)
	UpdateReservation(ctx context.Context, id int64, c model.ReservationChange) error
	DeleteReservation(ctx context.Context, id int64) error

	CountMetric(ctx context.Context, metric model.Metric, today model.Date) (int64, error)
	CollectionStats(ctx context.Context) (model.CollectionStats, error)
	CategoryDistribution(ctx context.Context) ([]model.CategoryCount, error)
	TopBorrowed(ctx context.Context, limit int) ([]model.BookCount, error)
	DailyLoans(ctx context.Context, from, to model.Date) ([]model.DailyCount, error)
	FinesCollected(ctx context.Context, from, to model.Date) (model.FinesCollected, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	patronsTableName      = `patrons`
	loansTableName        = `loans`
	reservationsTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx) //nolint:errcheck
	}()

	if err = fn(&repository{pool: r.pool, db: tx, inTx: true, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return mapErr(err, "commit tx")
	}
	return nil
}

var constraintMessages = map[string]string{
	"loans_one_active_per_patron_book":        "patron already has an active loan for this book",
	"reservations_one_active_per_book":        "book already has an active reservation",
	"reservations_one_active_per_patron_book": "patron already has an active reservation for this book",
	"reservations_expiry_check":               "expiry date must be after reservation date",
	"books_available_copies_check":            "no copies available",
	"books_isbn_key":                          "isbn already registered",
	"patrons_registration_key":                "registration already in use",
	"loans_due_date_check":                    "due date before loan date",
}

// mapErr turns constraint violations into conflicts and wraps everything else.
func mapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation, pgerrcode.ExclusionViolation:
			if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
				return errs.Conflict(msg)
			}
			return errs.Conflict("constraint %s violated", pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errs.Conflict("record is still referenced: %s", pgErr.ConstraintName)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return errs.Conflict("concurrent update, retry the request")
		}
	}
	return errors.Wrap(err, op)
}

func notFoundOr(err error, op, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(format, args...)
	}
	return mapErr(err, op)
}
