package repository

import (
	"context"
	"strings"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var patronColumns = []string{"id", "registration", "name", "email", "role", "active", "created_at"}

func (r *repository) CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error) {
	query, args, err := qb.Insert(patronsTableName).
		Columns("registration", "name", "email", "role").
		Values(in.Registration, in.Name, in.Email, in.Role).
		Suffix("returning " + strings.Join(patronColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	return r.onePatron(ctx, "CreatePatron", 0, query, args...)
}

func (r *repository) GetPatron(ctx context.Context, id int64) (model.Patron, error) {
	query, args, err := qb.Select(patronColumns...).
		From(patronsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	return r.onePatron(ctx, "GetPatron", id, query, args...)
}

func (r *repository) ListPatrons(ctx context.Context, f model.PatronFilter) ([]model.Patron, error) {
	q := qb.Select(patronColumns...).
		From(patronsTableName).
		OrderBy("name", "id")
	if !f.IncludeInactive {
		q = q.Where(sq.Eq{"active": true})
	}
	if f.Role != "" {
		q = q.Where(sq.Eq{"role": f.Role})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, "ListPatrons")
	}
	defer rows.Close()

	patrons, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Patron])
	if err != nil {
		return nil, mapErr(err, "ListPatrons.CollectRows")
	}
	return patrons, nil
}

func (r *repository) UpdatePatron(ctx context.Context, id int64, in model.PatronInput) (model.Patron, error) {
	query, args, err := qb.Update(patronsTableName).
		SetMap(map[string]any{
			"registration": in.Registration,
			"name":         in.Name,
			"email":        in.Email,
			"role":         in.Role,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(patronColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Patron{}, err
	}
	return r.onePatron(ctx, "UpdatePatron", id, query, args...)
}

// DeactivatePatron is the only way a patron leaves; rows are never deleted.
func (r *repository) DeactivatePatron(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `update patrons set active = false where id = $1`, id)
	if err != nil {
		return mapErr(err, "DeactivatePatron")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("patron %d not found", id)
	}
	return nil
}

func (r *repository) onePatron(ctx context.Context, op string, id int64, query string, args ...any) (model.Patron, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Patron{}, mapErr(err, op)
	}
	defer rows.Close()

	p, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Patron])
	if err != nil {
		return model.Patron{}, notFoundOr(err, op, "patron %d not found", id)
	}
	return p, nil
}
