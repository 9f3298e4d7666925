package domain

import "time"

// Payment is money received from a student (or refunded by a mentor/professor).
// The record itself is owned by the payments module; the ledger only reads it.
type Payment struct {
	ID                string    `json:"id"`
	Amount            int64     `json:"amount"`
	Currency          Currency  `json:"currency"`
	PaymentDate       time.Time `json:"paymentDate"`
	StudentID         *string   `json:"studentId,omitempty"`
	MentorID          *string   `json:"mentorId,omitempty"`
	ProfessorID       *string   `json:"professorId,omitempty"`
	BankAccountID     *string   `json:"bankAccountId,omitempty"`
	PaymentScheduleID *string   `json:"paymentScheduleId,omitempty"`
	QuoteID           *string   `json:"quoteId,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
}

// PaymentAllocation assigns part of a payment to a schedule installment.
type PaymentAllocation struct {
	PaymentScheduleID string `json:"paymentScheduleId"`
	Amount            int64  `json:"amount"`
}

// DuplicatePaymentQuery describes a candidate payment to check against recent ones.
// At least one party ID must be set for the query to match anything.
// ExcludePaymentID skips the candidate itself when it is already stored.
type DuplicatePaymentQuery struct {
	ExcludePaymentID *string
	StudentID        *string
	MentorID         *string
	ProfessorID      *string
	Amount           int64
	PaymentDate      time.Time
}

// ScheduleStatus is the derived state of a payment-schedule installment.
type ScheduleStatus string

const (
	SchedulePending ScheduleStatus = "PENDING"
	SchedulePartial ScheduleStatus = "PARTIAL"
	SchedulePaid    ScheduleStatus = "PAID"
	ScheduleOverdue ScheduleStatus = "OVERDUE"
)

// DeriveScheduleStatus computes an installment's status from what has been paid so far.
func DeriveScheduleStatus(paid, total int64, dueDate, now time.Time) ScheduleStatus {
	switch {
	case paid >= total:
		return SchedulePaid
	case paid > 0:
		return SchedulePartial
	case now.After(dueDate):
		return ScheduleOverdue
	default:
		return SchedulePending
	}
}
