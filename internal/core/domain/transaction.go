package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger row by the business event that produced it.
type TransactionType string

const (
	StudentPayment   TransactionType = "STUDENT_PAYMENT"
	MentorPayment    TransactionType = "MENTOR_PAYMENT"
	ProfessorPayment TransactionType = "PROFESSOR_PAYMENT"
	ExpenseTxn       TransactionType = "EXPENSE"
	Distribution     TransactionType = "DISTRIBUTION"
	Transfer         TransactionType = "TRANSFER"
	FXExchange       TransactionType = "FX_EXCHANGE"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case StudentPayment, MentorPayment, ProfessorPayment, ExpenseTxn, Distribution, Transfer, FXExchange:
		return true
	}
	return false
}

// Transaction is one immutable row of the ledger. Money leaves SourceAccountID and
// enters DestinationAccountID; either slot may be empty depending on Type.
// Amount is expressed in minor units (cents) of Currency and is never negative.
type Transaction struct {
	ID                   string           `json:"id"`
	TransactionNumber    string           `json:"transactionNumber"`
	Date                 time.Time        `json:"date"`
	Type                 TransactionType  `json:"type"`
	Amount               int64            `json:"amount"`
	Currency             Currency         `json:"currency"`
	SourceAccountID      *string          `json:"sourceAccountId,omitempty"`
	DestinationAccountID *string          `json:"destinationAccountId,omitempty"`
	PaymentID            *string          `json:"paymentId,omitempty"`
	ExpenseID            *string          `json:"expenseId,omitempty"`
	DistributionID       *string          `json:"distributionId,omitempty"`
	MissionID            *string          `json:"missionId,omitempty"`
	QuoteID              *string          `json:"quoteId,omitempty"`
	PaymentScheduleID    *string          `json:"paymentScheduleId,omitempty"`
	StudentID            *string          `json:"studentId,omitempty"`
	MentorID             *string          `json:"mentorId,omitempty"`
	ProfessorID          *string          `json:"professorId,omitempty"`
	LinkedTransactionID  *string          `json:"linkedTransactionId,omitempty"`
	ExchangeRate         *decimal.Decimal `json:"exchangeRate,omitempty"`
	FXFees               *int64           `json:"fxFees,omitempty"`
	Description          string           `json:"description"`
	Notes                *string          `json:"notes,omitempty"`
	CreatedBy            string           `json:"createdBy"`
	CreatedAt            time.Time        `json:"createdAt"`
}

// EffectOn returns the signed change this row applies to accountID:
// +Amount when it is the destination, -Amount when it is the source.
func (t Transaction) EffectOn(accountID string) int64 {
	var effect int64
	if t.DestinationAccountID != nil && *t.DestinationAccountID == accountID {
		effect += t.Amount
	}
	if t.SourceAccountID != nil && *t.SourceAccountID == accountID {
		effect -= t.Amount
	}
	return effect
}

// AccountIDs returns the non-empty account slots of the row.
func (t Transaction) AccountIDs() []string {
	ids := make([]string, 0, 2)
	if t.SourceAccountID != nil {
		ids = append(ids, *t.SourceAccountID)
	}
	if t.DestinationAccountID != nil && (t.SourceAccountID == nil || *t.SourceAccountID != *t.DestinationAccountID) {
		ids = append(ids, *t.DestinationAccountID)
	}
	return ids
}

// TransactionWithAccounts decorates a row with summaries of the accounts it touches.
type TransactionWithAccounts struct {
	Transaction
	SourceAccount      *AccountSummary `json:"sourceAccount,omitempty"`
	DestinationAccount *AccountSummary `json:"destinationAccount,omitempty"`
}

// TransactionFilter narrows a ledger query. Nil fields are not applied.
// AccountID matches rows where the account is either source or destination.
type TransactionFilter struct {
	From        *time.Time
	To          *time.Time
	Currency    *Currency
	Type        *TransactionType
	AccountID   *string
	StudentID   *string
	MentorID    *string
	ProfessorID *string
	Limit       int
	Offset      int
}

// TransactionPage is one window of a filtered ledger query.
type TransactionPage struct {
	Transactions []TransactionWithAccounts `json:"transactions"`
	Total        int                       `json:"total"`
	HasMore      bool                      `json:"hasMore"`
}
