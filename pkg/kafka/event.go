package kafka

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Action string

const (
	ActionLoanOpened           Action = "loan_opened"
	ActionLoanClosed           Action = "loan_closed"
	ActionFineWaived           Action = "fine_waived"
	ActionFinePaid             Action = "fine_paid"
	ActionReservationCreated   Action = "reservation_created"
	ActionReservationUpdated   Action = "reservation_updated"
	ActionReservationCancelled Action = "reservation_cancelled"
)

// AuditEvent is published after every committed lifecycle mutation.
type AuditEvent struct {
	ID            string    `json:"id"`
	OccurredAt    time.Time `json:"occurredAt"`
	Action        Action    `json:"action"`
	LoanID        int64     `json:"loanId,omitempty"`
	ReservationID int64     `json:"reservationId,omitempty"`
	PatronID      int64     `json:"patronId"`
	BookID        int64     `json:"bookId"`
	Amount        string    `json:"amount,omitempty"`
	Details       string    `json:"details,omitempty"`
}

func (e AuditEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeAuditEvent(data []byte) (AuditEvent, error) {
	var e AuditEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
