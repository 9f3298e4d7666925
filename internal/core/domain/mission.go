package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MissionStatus tracks a mission through review.
type MissionStatus string

const (
	MissionDraft     MissionStatus = "DRAFT"
	MissionPending   MissionStatus = "PENDING"
	MissionValidated MissionStatus = "VALIDATED"
	MissionCancelled MissionStatus = "CANCELLED"
)

// Mission is a unit of work done by a mentor or a professor that the company pays for.
type Mission struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Status      MissionStatus    `json:"status"`
	Amount      int64            `json:"amount"`
	Currency    Currency         `json:"currency"`
	HoursWorked *decimal.Decimal `json:"hoursWorked,omitempty"`
	MentorID    *string          `json:"mentorId,omitempty"`
	ProfessorID *string          `json:"professorId,omitempty"`
	StudentID   *string          `json:"studentId,omitempty"`
	MissionDate time.Time        `json:"missionDate"`
	PaidAt      *time.Time       `json:"paidAt,omitempty"`
}

// IsPaid reports whether a payout has already been booked for the mission.
func (m Mission) IsPaid() bool {
	return m.PaidAt != nil
}

// PayeeType returns MentorPayment when a mentor is attached, otherwise ProfessorPayment.
func (m Mission) PayeeType() TransactionType {
	if m.MentorID != nil {
		return MentorPayment
	}
	return ProfessorPayment
}
