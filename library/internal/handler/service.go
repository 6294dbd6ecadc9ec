package handler

import (
	"context"

	"github.com/FortunatoE/SistemaBiblioteca/library/internal/model"
	"github.com/FortunatoE/SistemaBiblioteca/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	OpenLoan(ctx context.Context, req model.OpenLoanRequest) (model.LoanDetails, error)
	CloseLoan(ctx context.Context, id int64) (model.LoanDetails, error)
	WaiveFine(ctx context.Context, id int64, reason string) (model.LoanDetails, error)
	RecordPayment(ctx context.Context, id int64, req model.PaymentRequest) (model.LoanDetails, error)
	GetLoan(ctx context.Context, id int64) (model.LoanDetails, error)
	ListLoans(ctx context.Context, f model.LoanFilter) ([]model.LoanDetails, error)
	RecentLoans(ctx context.Context, limit int) ([]model.LoanDetails, error)
	ListPatronLoans(ctx context.Context, patronID int64) ([]model.LoanDetails, error)

	CreateReservation(ctx context.Context, req model.ReservationRequest) (model.ReservationDetails, error)
	UpdateReservation(ctx context.Context, id int64, patch model.ReservationPatch) (model.ReservationDetails, error)
	CancelReservation(ctx context.Context, id int64) error
	GetReservation(ctx context.Context, id int64) (model.ReservationDetails, error)
	ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.ReservationDetails, error)
	ListPatronReservations(ctx context.Context, patronID int64) ([]model.ReservationDetails, error)

	ListFines(ctx context.Context, f model.FineFilter) (model.FineReport, error)

	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int64, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)

	CreatePatron(ctx context.Context, in model.PatronInput) (model.Patron, error)
	GetPatron(ctx context.Context, id int64) (model.Patron, error)
	ListPatrons(ctx context.Context, f model.PatronFilter) ([]model.Patron, error)
	UpdatePatron(ctx context.Context, id int64, in model.PatronInput) (model.Patron, error)
	DeactivatePatron(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) (model.Dashboard, error)
	CollectionStats(ctx context.Context) (model.CollectionStats, error)
	CategoryDistribution(ctx context.Context) ([]model.CategoryCount, error)
	TopBorrowed(ctx context.Context, limit int) ([]model.BookCount, error)
	DailyLoans(ctx context.Context, from, to string) ([]model.DailyCount, error)
	FinesCollected(ctx context.Context, from, to string) (model.FinesCollected, error)
}

var _ LibraryService = (*service.Service)(nil)
