package model

import "github.com/shopspring/decimal"

type FineStatus string

const (
	FinePending FineStatus = "pending"
	FinePaid    FineStatus = "paid"
	FineWaived  FineStatus = "waived"
	FineNone    FineStatus = "none"
)

type FineEntry struct {
	LoanDetails
	FineStatus  FineStatus      `json:"fineStatus"`
	Amount      decimal.Decimal `json:"amount"`
	OverdueDays int             `json:"overdueDays"`
}

type FineFilter struct {
	Status   FineStatus
	PatronID int64
}

type FineReport struct {
	Items        []FineEntry     `json:"items"`
	TotalPending decimal.Decimal `json:"totalPending"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalWaived  decimal.Decimal `json:"totalWaived"`
}
