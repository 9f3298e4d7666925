package models

import "time"

// Payment is the subset of the payments table read by duplicate detection.
type Payment struct {
	PaymentID         string    `db:"payment_id"`
	Amount            int64     `db:"amount"`
	CurrencyCode      string    `db:"currency_code"`
	PaymentDate       time.Time `db:"payment_date"`
	StudentID         *string   `db:"student_id"`
	MentorID          *string   `db:"mentor_id"`
	ProfessorID       *string   `db:"professor_id"`
	BankAccountID     *string   `db:"bank_account_id"`
	PaymentScheduleID *string   `db:"payment_schedule_id"`
	QuoteID           *string   `db:"quote_id"`
	Notes             *string   `db:"notes"`
}
