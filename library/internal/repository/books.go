package repository

import (
	"context"
	"strings"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "publisher", "published_year", "category",
	"shelf_location", "total_copies", "available_copies", "created_at",
}

func (r *repository) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "publisher", "published_year", "category", "shelf_location", "total_copies", "available_copies").
		Values(in.Title, in.Author, in.ISBN, in.Publisher, in.PublishedYear, in.Category, in.ShelfLocation, in.TotalCopies, in.TotalCopies).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.oneBook(ctx, "CreateBook", 0, query, args...)
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.oneBook(ctx, "GetBook", id, query, args...)
}

func (r *repository) LockBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.oneBook(ctx, "LockBook", id, query, args...)
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title", "id")
	if f.Category != "" {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(sq.Or{sq.ILike{"title": like}, sq.ILike{"author": like}, sq.ILike{"isbn": like}})
	}
	if f.AvailableOnly {
		q = q.Where(sq.Gt{"available_copies": 0})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err, "ListBooks")
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, mapErr(err, "ListBooks.CollectRows")
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, in model.BookInput, available int) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		SetMap(map[string]any{
			"title":            in.Title,
			"author":           in.Author,
			"isbn":             in.ISBN,
			"publisher":        in.Publisher,
			"published_year":   in.PublishedYear,
			"category":         in.Category,
			"shelf_location":   in.ShelfLocation,
			"total_copies":     in.TotalCopies,
			"available_copies": available,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	return r.oneBook(ctx, "UpdateBook", id, query, args...)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err, "DeleteBook")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("book %d not found", id)
	}
	return nil
}

// AdjustAvailable moves available_copies by delta; the table check keeps it
// within [0, total_copies].
func (r *repository) AdjustAvailable(ctx context.Context, bookID int64, delta int) error {
	q := `
update books
    set available_copies = available_copies + @delta
where id = @id`
	args := pgx.NamedArgs{
		"id":    bookID,
		"delta": delta,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return mapErr(err, "AdjustAvailable")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("book %d not found", bookID)
	}
	return nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	const q = `select distinct category from books where category is not null and category <> '' order by category`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, mapErr(err, "Categories")
	}
	defer rows.Close()
	cats, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapErr(err, "Categories.CollectRows")
	}
	return cats, nil
}

func (r *repository) oneBook(ctx context.Context, op string, id int64, query string, args ...any) (model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, mapErr(err, op)
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, notFoundOr(err, op, "book %d not found", id)
	}
	return book, nil
}
