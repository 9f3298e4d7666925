package domain

// BankAccount is a cash account owned by the company. Its currency is fixed at creation
// and its balance is always derived from the ledger, never stored.
type BankAccount struct {
	ID          string   `json:"id"`
	AccountName string   `json:"accountName"`
	Currency    Currency `json:"currency"`
	IsActive    bool     `json:"isActive"`
	AuditFields
}

// Summary returns the short form used when decorating ledger rows.
func (a BankAccount) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, AccountName: a.AccountName, Currency: a.Currency}
}

// AccountSummary is the minimal account projection returned alongside transactions.
type AccountSummary struct {
	ID          string   `json:"id"`
	AccountName string   `json:"accountName"`
	Currency    Currency `json:"currency"`
}
