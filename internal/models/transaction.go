package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the append-only transactions table.
// Nullable columns are pointers, except exchange_rate which uses decimal.NullDecimal.
type Transaction struct {
	TransactionID        string              `db:"transaction_id"`
	TransactionNumber    string              `db:"transaction_number"`
	TransactionDate      time.Time           `db:"transaction_date"`
	TransactionType      string              `db:"transaction_type"`
	Amount               int64               `db:"amount"`
	CurrencyCode         string              `db:"currency_code"`
	SourceAccountID      *string             `db:"source_account_id"`
	DestinationAccountID *string             `db:"destination_account_id"`
	PaymentID            *string             `db:"payment_id"`
	ExpenseID            *string             `db:"expense_id"`
	DistributionID       *string             `db:"distribution_id"`
	MissionID            *string             `db:"mission_id"`
	QuoteID              *string             `db:"quote_id"`
	PaymentScheduleID    *string             `db:"payment_schedule_id"`
	StudentID            *string             `db:"student_id"`
	MentorID             *string             `db:"mentor_id"`
	ProfessorID          *string             `db:"professor_id"`
	LinkedTransactionID  *string             `db:"linked_transaction_id"`
	ExchangeRate         decimal.NullDecimal `db:"exchange_rate"`
	FXFees               *int64              `db:"fx_fees"`
	Description          string              `db:"description"`
	Notes                *string             `db:"notes"`
	CreatedBy            string              `db:"created_by"`
	CreatedAt            time.Time           `db:"created_at"`
}
