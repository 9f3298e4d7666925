package accounting

import (
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// BalanceFromFlows is the ledger balance identity: money in minus money out.
func BalanceFromFlows(credits, debits int64) int64 {
	return credits - debits
}

// SumFlows aggregates the credits and debits a set of rows applies to accountID.
// It is used to recompute balances outside SQL, and must agree with the repository aggregate.
func SumFlows(transactions []domain.Transaction, accountID string) (credits int64, debits int64) {
	for _, txn := range transactions {
		if txn.DestinationAccountID != nil && *txn.DestinationAccountID == accountID {
			credits += txn.Amount
		}
		if txn.SourceAccountID != nil && *txn.SourceAccountID == accountID {
			debits += txn.Amount
		}
	}
	return credits, debits
}

// TotalsByCurrency groups per-account balances by each account's currency.
// Every supported currency appears in the result, at zero if no account holds it.
func TotalsByCurrency(accounts []domain.BankAccount, balances map[string]int64) map[domain.Currency]int64 {
	totals := make(map[domain.Currency]int64, len(domain.SupportedCurrencies))
	for _, c := range domain.SupportedCurrencies {
		totals[c] = 0
	}
	for _, acc := range accounts {
		totals[acc.Currency] += balances[acc.ID]
	}
	return totals
}
