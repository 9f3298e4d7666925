package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mission is the row shape of missions read by the payout flow.
type Mission struct {
	MissionID    string              `db:"mission_id"`
	Title        string              `db:"title"`
	Status       string              `db:"status"`
	Amount       int64               `db:"amount"`
	CurrencyCode string              `db:"currency_code"`
	HoursWorked  decimal.NullDecimal `db:"hours_worked"`
	MentorID     *string             `db:"mentor_id"`
	ProfessorID  *string             `db:"professor_id"`
	StudentID    *string             `db:"student_id"`
	MissionDate  time.Time           `db:"mission_date"`
	PaidAt       *time.Time          `db:"paid_at"`
}
