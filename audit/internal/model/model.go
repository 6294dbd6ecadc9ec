package model

import "time"

// Event is a stored audit record of a library lifecycle mutation.
type Event struct {
	ID            string    `json:"id" db:"id"`
	OccurredAt    time.Time `json:"occurredAt" db:"occurred_at"`
	Action        string    `json:"action" db:"action"`
	LoanID        *int64    `json:"loanId,omitempty" db:"loan_id"`
	ReservationID *int64    `json:"reservationId,omitempty" db:"reservation_id"`
	PatronID      int64     `json:"patronId" db:"patron_id"`
	BookID        int64     `json:"bookId" db:"book_id"`
	Amount        *string   `json:"amount,omitempty" db:"amount"`
	Details       *string   `json:"details,omitempty" db:"details"`
}

type Filter struct {
	PatronID int64
	Action   string
	Limit    int
}

type EventList struct {
	Items []Event `json:"items"`
}
