package model

import "github.com/shopspring/decimal"

type Metric string

const (
	MetricBooks              Metric = "books"
	MetricActiveLoans        Metric = "active_loans"
	MetricActiveReservations Metric = "active_reservations"
	MetricOverdueLoans       Metric = "overdue_loans"
	MetricActivePatrons      Metric = "active_patrons"
	MetricAvailableCopies    Metric = "available_copies"
)

type Dashboard struct {
	TotalBooks         int64 `json:"totalBooks"`
	ActiveLoans        int64 `json:"activeLoans"`
	ActiveReservations int64 `json:"activeReservations"`
	OverdueLoans       int64 `json:"overdueLoans"`
	ActivePatrons      int64 `json:"activePatrons"`
	AvailableCopies    int64 `json:"availableCopies"`
}

type CollectionStats struct {
	TotalTitles     int64 `json:"totalTitles" db:"total_titles"`
	TotalCopies     int64 `json:"totalCopies" db:"total_copies"`
	AvailableCopies int64 `json:"availableCopies" db:"available_copies"`
	OnLoan          int64 `json:"onLoan" db:"on_loan"`
	Categories      int64 `json:"categories" db:"categories"`
}

type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Books    int64  `json:"books" db:"books"`
	Loans    int64  `json:"loans" db:"loans"`
}

type BookCount struct {
	BookID int64  `json:"bookId" db:"book_id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Loans  int64  `json:"loans" db:"loans"`
}

type DailyCount struct {
	Day      Date  `json:"day" db:"day"`
	Opened   int64 `json:"opened" db:"opened"`
	Returned int64 `json:"returned" db:"returned"`
}

type FinesCollected struct {
	From     Date            `json:"from"`
	To       Date            `json:"to"`
	Payments int64           `json:"payments" db:"payments"`
	Total    decimal.Decimal `json:"total" db:"total"`
}
