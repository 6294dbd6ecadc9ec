package service_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/errs"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/repository"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/service"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/testdb"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *clock) advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.AddDate(0, 0, days)
}

// integration tests share one schema and therefore run sequentially.
func newIntegration(t *testing.T) (*service.Service, repository.Repository, *clock) {
	t.Helper()
	pool := testdb.Open(t, "service_test")
	repo, err := repository.NewRepository(pool, zap.NewExample().Named("test"))
	require.NoError(t, err)
	clk := &clock{cur: now}
	svc := service.NewService(repo, zap.NewExample().Named("test"),
		service.WithClock(clk.now),
		service.WithPublisher(&recorder{}),
	)
	return svc, repo, clk
}

func seedBook(t *testing.T, svc *service.Service, copies int) model.Book {
	t.Helper()
	book, err := svc.CreateBook(context.Background(), model.BookInput{
		Title: "Introduction to Algorithms", Author: "Cormen", TotalCopies: copies,
	})
	require.NoError(t, err)
	return book
}

func seedPatrons(t *testing.T, svc *service.Service, n int) []model.Patron {
	t.Helper()
	out := make([]model.Patron, 0, n)
	for i := 0; i < n; i++ {
		p, err := svc.CreatePatron(context.Background(), model.PatronInput{
			Registration: fmt.Sprintf("2025%04d", i),
			Name:         fmt.Sprintf("Patron %d", i),
			Email:        fmt.Sprintf("p%d@uni.edu", i),
			Role:         model.RoleStudent,
		})
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestIntegration_LoanLifecycle(t *testing.T) {
	svc, _, clk := newIntegration(t)
	ctx := context.Background()
	book := seedBook(t, svc, 1)
	patrons := seedPatrons(t, svc, 2)

	loan, err := svc.OpenLoan(ctx, model.OpenLoanRequest{PatronID: patrons[0].ID, BookID: book.ID})
	require.NoError(t, err)
	require.Equal(t, "2025-04-04", loan.DueDate.String())

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.AvailableCopies)

	_, err = svc.OpenLoan(ctx, model.OpenLoanRequest{PatronID: patrons[1].ID, BookID: book.ID})
	require.ErrorIs(t, err, errs.ErrConflict)

	clk.advance(35)
	fines, err := svc.ListFines(ctx, model.FineFilter{Status: model.FinePending})
	require.NoError(t, err)
	require.Len(t, fines.Items, 1)
	require.Equal(t, "40.00", fines.TotalPending.StringFixed(2))

	closed, err := svc.CloseLoan(ctx, loan.ID)
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, closed.Status)
	require.Equal(t, "40.00", closed.FineAmount.StringFixed(2))

	_, err = svc.CloseLoan(ctx, loan.ID)
	require.ErrorIs(t, err, errs.ErrConflict)

	got, err = svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableCopies)

	paid, err := svc.RecordPayment(ctx, loan.ID, model.PaymentRequest{Method: model.PaymentPix})
	require.NoError(t, err)
	require.NotNil(t, paid.PaidDate)
	require.NotNil(t, paid.ReceiptRef)

	_, err = svc.RecordPayment(ctx, loan.ID, model.PaymentRequest{Method: model.PaymentPix})
	require.ErrorIs(t, err, errs.ErrConflict)

	// a collected fine stays collected
	_, err = svc.WaiveFine(ctx, loan.ID, "goodwill")
	require.ErrorIs(t, err, errs.ErrConflict)

	fines, err = svc.ListFines(ctx, model.FineFilter{Status: model.FinePaid})
	require.NoError(t, err)
	require.Len(t, fines.Items, 1)
	require.Equal(t, "40.00", fines.TotalPaid.StringFixed(2))

	collected, err := svc.FinesCollected(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, int64(1), collected.Payments)
	require.Equal(t, "40.00", collected.Total.StringFixed(2))
}

func TestIntegration_ConcurrentLastCopy(t *testing.T) {
	svc, _, _ := newIntegration(t)
	ctx := context.Background()
	const n = 10
	book := seedBook(t, svc, 1)
	patrons := seedPatrons(t, svc, n)

	var (
		wg        sync.WaitGroup
		ok        atomic.Int32
		conflicts atomic.Int32
	)
	for _, p := range patrons {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.OpenLoan(ctx, model.OpenLoanRequest{PatronID: p.ID, BookID: book.ID})
			switch {
			case err == nil:
				ok.Add(1)
			case errs.KindOf(err) == errs.KindConflict:
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), ok.Load())
	require.Equal(t, int32(n-1), conflicts.Load())

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.AvailableCopies)

	active, err := svc.ListLoans(ctx, model.LoanFilter{Status: model.LoanActive, BookID: book.ID})
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestIntegration_ConcurrentReservations(t *testing.T) {
	svc, _, _ := newIntegration(t)
	ctx := context.Background()
	const n = 8
	book := seedBook(t, svc, 3)
	patrons := seedPatrons(t, svc, n)

	var (
		wg sync.WaitGroup
		ok atomic.Int32
	)
	for _, p := range patrons {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateReservation(ctx, model.ReservationRequest{
				PatronID: p.ID, BookID: book.ID, ExpiryDate: "2025-03-25",
			})
			if err == nil {
				ok.Add(1)
				return
			}
			if errs.KindOf(err) != errs.KindConflict {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), ok.Load())

	// holds never reserve inventory
	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.AvailableCopies)
}

func TestIntegration_ReservationRoundTrip(t *testing.T) {
	svc, _, clk := newIntegration(t)
	ctx := context.Background()
	book := seedBook(t, svc, 1)
	patrons := seedPatrons(t, svc, 2)

	res, err := svc.CreateReservation(ctx, model.ReservationRequest{
		PatronID:        patrons[0].ID,
		BookID:          book.ID,
		ReservationDate: "2025-03-20",
		ExpiryDate:      "2025-03-27",
		Notes:           ptr("pick up at the front desk"),
	})
	require.NoError(t, err)
	require.Equal(t, model.ReservationActive, res.Status)

	got, err := svc.GetReservation(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, res.ID, got.ID)
	require.Equal(t, patrons[0].ID, got.PatronID)
	require.Equal(t, book.ID, got.BookID)
	require.Equal(t, "2025-03-20", got.ReservationDate.String())
	require.Equal(t, "2025-03-27", got.ExpiryDate.String())
	require.Equal(t, model.ReservationActive, got.Status)
	require.NotNil(t, got.Notes)
	require.Equal(t, "pick up at the front desk", *got.Notes)
	require.Equal(t, patrons[0].Name, got.PatronName)
	require.Equal(t, book.Title, got.BookTitle)

	// an expired hold no longer blocks the next patron
	clk.advance(8)
	other, err := svc.CreateReservation(ctx, model.ReservationRequest{
		PatronID: patrons[1].ID, BookID: book.ID, ExpiryDate: "2025-03-30",
	})
	require.NoError(t, err)

	got, err = svc.GetReservation(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, model.ReservationExpired, got.Status)

	require.NoError(t, svc.CancelReservation(ctx, other.ID))
	_, err = svc.GetReservation(ctx, other.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.ErrorIs(t, svc.CancelReservation(ctx, other.ID), errs.ErrNotFound)
}
