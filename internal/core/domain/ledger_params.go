package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXExchangeParams describes a conversion between two accounts in different currencies.
// SourceAmount leaves SourceAccountID in SourceCurrency and DestinationAmount arrives on
// DestinationAccountID in DestinationCurrency.
type FXExchangeParams struct {
	Date                 time.Time
	SourceAccountID      string
	DestinationAccountID string
	SourceAmount         int64
	SourceCurrency       Currency
	DestinationAmount    int64
	DestinationCurrency  Currency
	ExchangeRate         decimal.Decimal
	Fees                 int64
	Description          string
	Notes                *string
	CreatedBy            string
}

// TransferParams moves money between two accounts holding the same currency.
type TransferParams struct {
	Date                 time.Time
	SourceAccountID      string
	DestinationAccountID string
	Amount               int64
	Currency             Currency
	Description          string
	Notes                *string
	CreatedBy            string
}
