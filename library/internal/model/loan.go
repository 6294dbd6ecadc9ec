package model

import (
	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentPix      PaymentMethod = "pix"
	PaymentTransfer PaymentMethod = "transfer"
)

type Loan struct {
	ID            int64           `json:"id" db:"id"`
	PatronID      int64           `json:"patronId" db:"patron_id"`
	BookID        int64           `json:"bookId" db:"book_id"`
	LoanDate      Date            `json:"loanDate" db:"loan_date"`
	DueDate       Date            `json:"dueDate" db:"due_date"`
	ReturnDate    *Date           `json:"returnDate" db:"return_date"`
	Status        LoanStatus      `json:"status" db:"status"`
	FineAmount    decimal.Decimal `json:"fineAmount" db:"fine_amount"`
	Waived        bool            `json:"waived" db:"waived"`
	WaiverReason  *string         `json:"waiverReason,omitempty" db:"waiver_reason"`
	WaivedDate    *Date           `json:"waivedDate,omitempty" db:"waived_date"`
	WaivedAmount  decimal.Decimal `json:"waivedAmount" db:"waived_amount"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty" db:"payment_method"`
	PaidDate      *Date           `json:"paidDate,omitempty" db:"paid_date"`
	ReceiptRef    *string         `json:"receiptRef,omitempty" db:"receipt_ref"`
}

// LoanDetails is a loan joined with patron and book display fields.
type LoanDetails struct {
	Loan
	PatronName         string `json:"patronName" db:"patron_name"`
	PatronRegistration string `json:"patronRegistration" db:"patron_registration"`
	BookTitle          string `json:"bookTitle" db:"book_title"`
	BookAuthor         string `json:"bookAuthor" db:"book_author"`
}

type OpenLoanRequest struct {
	PatronID int64   `json:"patronId" validate:"required,gt=0"`
	BookID   int64   `json:"bookId" validate:"required,gt=0"`
	DueDate  *string `json:"dueDate" validate:"omitempty,date"`
}

type WaiveRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type PaymentRequest struct {
	Method     PaymentMethod `json:"method" validate:"required,oneof=cash card pix transfer"`
	ReceiptRef *string       `json:"receiptRef" validate:"omitempty,max=64"`
}

type LoanFilter struct {
	Status   LoanStatus
	PatronID int64
	BookID   int64
	// Overdue keeps active loans whose due date is before Today.
	Overdue bool
	Today   Date
	Limit   int
}

// LoanClose is applied when a loan moves to returned.
type LoanClose struct {
	ReturnDate Date
	Fine       decimal.Decimal
}

type Waiver struct {
	Reason string
	Date   Date
	Amount decimal.Decimal
}

type Payment struct {
	Method     PaymentMethod
	Date       Date
	ReceiptRef string
	Amount     decimal.Decimal
}
