package repository

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var loanColumns = []string{
	"id", "patron_id", "book_id", "loan_date", "due_date", "return_date", "status", "fine_amount",
	"waived", "waiver_reason", "waived_date", "waived_amount", "payment_method", "paid_date", "receipt_ref",
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, alias+"."+c)
	}
	return out
}

func loanDetailsQuery() sq.SelectBuilder {
	cols := append(prefixed("l", loanColumns),
		"p.name as patron_name",
		"p.registration as patron_registration",
		"b.title as book_title",
		"b.author as book_author",
	)
	return qb.Select(cols...).
		From(loansTableName + " l").
		Join(patronsTableName + " p on p.id = l.patron_id").
		Join(booksTableName + " b on b.id = l.book_id")
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (int64, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("patron_id", "book_id", "loan_date", "due_date", "status").
		Values(loan.PatronID, loan.BookID, loan.LoanDate, loan.DueDate, model.LoanActive).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapErr(err, "CreateLoan")
	}
	return id, nil
}

func (r *repository) GetLoan(ctx context.Context, id int64) (model.LoanDetails, error) {
	query, args, err := loanDetailsQuery().Where(sq.Eq{"l.id": id}).ToSql()
	if err != nil {
		return model.LoanDetails{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.LoanDetails{}, mapErr(err, "GetLoan")
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LoanDetails])
	if err != nil {
		return model.LoanDetails{}, notFoundOr(err, "GetLoan", "loan %d not found", id)
	}
	return loan, nil
}

func (r *repository) LockLoan(ctx context.Context, id int64) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Loan{}, mapErr(err, "LockLoan")
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		return model.Loan{}, notFoundOr(err, "LockLoan", "loan %d not found", id)
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, f model.LoanFilter) ([]model.LoanDetails, error) {
	q := loanDetailsQuery().OrderBy("l.loan_date desc", "l.id desc")
	if f.Status != "" {
		q = q.Where(sq.Eq{"l.status": f.Status})
	}
	if f.PatronID != 0 {
		q = q.Where(sq.Eq{"l.patron_id": f.PatronID})
	}
	if f.BookID != 0 {
		q = q.Where(sq.Eq{"l.book_id": f.BookID})
	}
	if f.Overdue {
		q = q.Where(sq.Eq{"l.status": model.LoanActive}).Where(sq.Lt{"l.due_date": f.Today})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	return r.listLoans(ctx, "ListLoans", q)
}

func (r *repository) HasActiveLoan(ctx context.Context, patronID, bookID int64) (bool, error) {
	const q = `select exists(select 1 from loans where patron_id = $1 and book_id = $2 and status = 'active')`
	var ok bool
	if err := r.db.QueryRow(ctx, q, patronID, bookID).Scan(&ok); err != nil {
		return false, mapErr(err, "HasActiveLoan")
	}
	return ok, nil
}

func (r *repository) CountActiveLoansByPatron(ctx context.Context, patronID int64) (int, error) {
	const q = `select count(*) from loans where patron_id = $1 and status = 'active'`
	var n int
	if err := r.db.QueryRow(ctx, q, patronID).Scan(&n); err != nil {
		return 0, mapErr(err, "CountActiveLoansByPatron")
	}
	return n, nil
}

func (r *repository) CountActiveLoansByBook(ctx context.Context, bookID int64) (int, error) {
	const q = `select count(*) from loans where book_id = $1 and status = 'active'`
	var n int
	if err := r.db.QueryRow(ctx, q, bookID).Scan(&n); err != nil {
		return 0, mapErr(err, "CountActiveLoansByBook")
	}
	return n, nil
}

func (r *repository) CloseLoan(ctx context.Context, id int64, c model.LoanClose) error {
	q := `
update loans
    set status = 'returned', return_date = @return_date, fine_amount = @fine
where id = @id and status = 'active'`
	args := pgx.NamedArgs{
		"id":          id,
		"return_date": c.ReturnDate,
		"fine":        c.Fine,
	}
	return r.execOne(ctx, "CloseLoan", q, args, errs.Conflict("loan %d is not active", id))
}

func (r *repository) WaiveFine(ctx context.Context, id int64, w model.Waiver) error {
	q := `
update loans
    set fine_amount = 0, waived = true, waiver_reason = @reason, waived_date = @date, waived_amount = @amount
where id = @id`
	args := pgx.NamedArgs{
		"id":     id,
		"reason": w.Reason,
		"date":   w.Date,
		"amount": w.Amount,
	}
	return r.execOne(ctx, "WaiveFine", q, args, errs.NotFound("loan %d not found", id))
}

func (r *repository) RecordPayment(ctx context.Context, id int64, p model.Payment) error {
	q := `
update loans
    set payment_method = @method, paid_date = @date, receipt_ref = @ref, fine_amount = @amount
where id = @id and paid_date is null`
	args := pgx.NamedArgs{
		"id":     id,
		"method": p.Method,
		"date":   p.Date,
		"ref":    p.ReceiptRef,
		"amount": p.Amount,
	}
	return r.execOne(ctx, "RecordPayment", q, args, errs.Conflict("fine for loan %d already paid", id))
}

// ListFineCandidates returns loans that carry any fine state: waived, paid,
// a stored amount, or active past due.
func (r *repository) ListFineCandidates(ctx context.Context, f model.FineFilter, today model.Date) ([]model.LoanDetails, error) {
	q := loanDetailsQuery().
		Where(sq.Or{
			sq.Eq{"l.waived": true},
			sq.NotEq{"l.paid_date": nil},
			sq.Gt{"l.fine_amount": 0},
			sq.And{sq.Eq{"l.status": model.LoanActive}, sq.Lt{"l.due_date": today}},
		}).
		OrderBy("l.due_date", "l.id")
	if f.PatronID != 0 {
		q = q.Where(sq.Eq{"l.patron_id": f.PatronID})
	}
	return r.listLoans(ctx, "ListFineCandidates", q)
}

func (r *repository) listLoans(ctx context.Context, op string, q sq.SelectBuilder) ([]model.LoanDetails, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, op)
	}
	defer rows.Close()

	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanDetails])
	if err != nil {
		return nil, mapErr(err, op+".CollectRows")
	}
	return loans, nil
}

func (r *repository) execOne(ctx context.Context, op, q string, args pgx.NamedArgs, noRows error) error {
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return mapErr(err, op)
	}
	if tag.RowsAffected() == 0 {
		return noRows
	}
	return nil
}
