package mapping

import (
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/kbouri/performup-platform-sub000/internal/models"
)

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		ID:          m.AccountID,
		AccountName: m.AccountName,
		Currency:    domain.Currency(m.CurrencyCode),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:    d.ID,
		AccountName:  d.AccountName,
		CurrencyCode: string(d.Currency),
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
