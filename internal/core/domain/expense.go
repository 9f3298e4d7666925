package domain

import "time"

// Expense is an outgoing company cost paid from one of the bank accounts.
type Expense struct {
	ID              string    `json:"id"`
	Amount          int64     `json:"amount"`
	Currency        Currency  `json:"currency"`
	ExpenseDate     time.Time `json:"expenseDate"`
	PayingAccountID *string   `json:"payingAccountId,omitempty"`
	Supplier        *string   `json:"supplier,omitempty"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
}
