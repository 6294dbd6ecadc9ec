package repository

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var metricQueries = map[model.Metric]string{
	model.MetricBooks:              `select count(*) from books`,
	model.MetricActiveLoans:        `select count(*) from loans where status = 'active'`,
	model.MetricActiveReservations: `select count(*) from reservations where status = 'active'`,
	model.MetricOverdueLoans:       `select count(*) from loans where status = 'active' and due_date < $1::date`,
	model.MetricActivePatrons:      `select count(*) from patrons where active`,
	model.MetricAvailableCopies:    `select coalesce(sum(available_copies), 0) from books`,
}

func (r *repository) CountMetric(ctx context.Context, metric model.Metric, today model.Date) (int64, error) {
	q, ok := metricQueries[metric]
	if !ok {
		return 0, errors.Errorf("unknown metric %q", metric)
	}
	var args []any
	if metric == model.MetricOverdueLoans {
		args = append(args, today)
	}
	var n int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, mapErr(err, "CountMetric."+string(metric))
	}
	return n, nil
}

func (r *repository) CollectionStats(ctx context.Context) (model.CollectionStats, error) {
	const q = `
	select count(*)                                          as total_titles,
	       coalesce(sum(total_copies), 0)                    as total_copies,
	       coalesce(sum(available_copies), 0)                as available_copies,
	       coalesce(sum(total_copies - available_copies), 0) as on_loan,
	       count(distinct category)                          as categories
	from books`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return model.CollectionStats{}, mapErr(err, "CollectionStats")
	}
	defer rows.Close()
	stats, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CollectionStats])
	if err != nil {
		return model.CollectionStats{}, mapErr(err, "CollectionStats.CollectOneRow")
	}
	return stats, nil
}

func (r *repository) CategoryDistribution(ctx context.Context) ([]model.CategoryCount, error) {
	const q = `
	select coalesce(nullif(b.category, ''), 'uncategorized') as category,
	       count(distinct b.id)                             as books,
	       count(l.id)                                      as loans
	from books b
	left join loans l on l.book_id = b.id
	group by 1
	order by loans desc, category`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapErr(err, "CategoryDistribution")
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CategoryCount])
	if err != nil {
		return nil, mapErr(err, "CategoryDistribution.CollectRows")
	}
	return out, nil
}

func (r *repository) TopBorrowed(ctx context.Context, limit int) ([]model.BookCount, error) {
	const q = `
	select b.id as book_id, b.title, b.author, count(l.id) as loans
	from loans l
	join books b on b.id = l.book_id
	group by b.id, b.title, b.author
	order by loans desc, b.id
	limit $1`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, mapErr(err, "TopBorrowed")
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BookCount])
	if err != nil {
		return nil, mapErr(err, "TopBorrowed.CollectRows")
	}
	return out, nil
}

func (r *repository) DailyLoans(ctx context.Context, from, to model.Date) ([]model.DailyCount, error) {
	const q = `
	select d::date                                                       as day,
	       (select count(*) from loans where loan_date = d::date)       as opened,
	       (select count(*) from loans where return_date = d::date)     as returned
	from generate_series($1::date, $2::date, interval '1 day') d
	order by day`
	rows, err := r.db.Query(ctx, q, from, to)
	if err != nil {
		return nil, mapErr(err, "DailyLoans")
	}
	defer rows.Close()
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.DailyCount])
	if err != nil {
		return nil, mapErr(err, "DailyLoans.CollectRows")
	}
	return out, nil
}

func (r *repository) FinesCollected(ctx context.Context, from, to model.Date) (model.FinesCollected, error) {
	const q = `
	select count(*), coalesce(sum(fine_amount), 0)
	from loans
	where paid_date between $1::date and $2::date`
	fc := model.FinesCollected{From: from, To: to}
	if err := r.db.QueryRow(ctx, q, from, to).Scan(&fc.Payments, &fc.Total); err != nil {
		return model.FinesCollected{}, mapErr(err, "FinesCollected")
	}
	return fc, nil
}
