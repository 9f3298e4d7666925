package models

// BankAccount is the row shape of bank_accounts.
type BankAccount struct {
	AccountID    string `db:"account_id"`
	AccountName  string `db:"account_name"`
	CurrencyCode string `db:"currency_code"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
