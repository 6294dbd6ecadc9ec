package service

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	libraryRepo "github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
)

func (s *Service) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	if in.TotalCopies < 1 {
		return model.Book{}, errs.Validation("total copies must be at least 1")
	}
	return s.repo.CreateBook(ctx, in)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, f)
}

// UpdateBook re-derives available copies from the new total and the loans
// currently out; it never takes availability from the caller.
func (s *Service) UpdateBook(ctx context.Context, id int64, in model.BookInput) (model.Book, error) {
	if in.TotalCopies < 1 {
		return model.Book{}, errs.Validation("total copies must be at least 1")
	}
	var book model.Book
	err := s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		if _, err := tx.LockBook(ctx, id); err != nil {
			return err
		}
		onLoan, err := tx.CountActiveLoansByBook(ctx, id)
		if err != nil {
			return err
		}
		available := in.TotalCopies - onLoan
		if available < 0 {
			return errs.Conflict("total copies %d is below the %d copies on loan", in.TotalCopies, onLoan)
		}
		book, err = tx.UpdateBook(ctx, id, in, available)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(tx libraryRepo.Repository) error {
		if _, err := tx.LockBook(ctx, id); err != nil {
			return err
		}
		onLoan, err := tx.CountActiveLoansByBook(ctx, id)
		if err != nil {
			return err
		}
		if onLoan > 0 {
			return errs.Conflict("book %d has %d active loans", id, onLoan)
		}
		return tx.DeleteBook(ctx, id)
	})
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
