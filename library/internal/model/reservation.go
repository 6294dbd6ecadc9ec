package model

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationFulfilled ReservationStatus = "fulfilled"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationExpired   ReservationStatus = "expired"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationActive, ReservationFulfilled, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

type Reservation struct {
	ID              int64             `json:"id" db:"id"`
	PatronID        int64             `json:"patronId" db:"patron_id"`
	BookID          int64             `json:"bookId" db:"book_id"`
	ReservationDate Date              `json:"reservationDate" db:"reservation_date"`
	ExpiryDate      Date              `json:"expiryDate" db:"expiry_date"`
	Status          ReservationStatus `json:"status" db:"status"`
	Notes           *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
}

type ReservationDetails struct {
	Reservation
	PatronName         string `json:"patronName" db:"patron_name"`
	PatronRegistration string `json:"patronRegistration" db:"patron_registration"`
	BookTitle          string `json:"bookTitle" db:"book_title"`
	BookAuthor         string `json:"bookAuthor" db:"book_author"`
}

type ReservationRequest struct {
	PatronID int64 `json:"patronId" validate:"required,gt=0"`
	BookID   int64 `json:"bookId" validate:"required,gt=0"`
	// ReservationDate defaults to today when empty.
	ReservationDate string  `json:"reservationDate"`
	ExpiryDate      string  `json:"expiryDate" validate:"required"`
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
}

type ReservationPatch struct {
	Status     *ReservationStatus `json:"status"`
	ExpiryDate *string            `json:"expiryDate"`
	Notes      *string            `json:"notes" validate:"omitempty,max=1000"`
}

func (p ReservationPatch) Empty() bool {
	return p.Status == nil && p.ExpiryDate == nil && p.Notes == nil
}

// ReservationChange is the validated form of a patch.
type ReservationChange struct {
	Status     *ReservationStatus
	ExpiryDate *Date
	Notes      *string
}

type ReservationFilter struct {
	Status   ReservationStatus
	PatronID int64
	BookID   int64
}
