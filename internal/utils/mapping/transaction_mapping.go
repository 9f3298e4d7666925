package mapping

import (
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/kbouri/performup-platform-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:        d.ID,
		TransactionNumber:    d.TransactionNumber,
		TransactionDate:      d.Date,
		TransactionType:      string(d.Type),
		Amount:               d.Amount,
		CurrencyCode:         string(d.Currency),
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		PaymentID:            d.PaymentID,
		ExpenseID:            d.ExpenseID,
		DistributionID:       d.DistributionID,
		MissionID:            d.MissionID,
		QuoteID:              d.QuoteID,
		PaymentScheduleID:    d.PaymentScheduleID,
		StudentID:            d.StudentID,
		MentorID:             d.MentorID,
		ProfessorID:          d.ProfessorID,
		LinkedTransactionID:  d.LinkedTransactionID,
		FXFees:               d.FXFees,
		Description:          d.Description,
		Notes:                d.Notes,
		CreatedBy:            d.CreatedBy,
		CreatedAt:            d.CreatedAt,
	}
	if d.ExchangeRate != nil {
		m.ExchangeRate = decimal.NewNullDecimal(*d.ExchangeRate)
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:                   m.TransactionID,
		TransactionNumber:    m.TransactionNumber,
		Date:                 m.TransactionDate,
		Type:                 domain.TransactionType(m.TransactionType),
		Amount:               m.Amount,
		Currency:             domain.Currency(m.CurrencyCode),
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		PaymentID:            m.PaymentID,
		ExpenseID:            m.ExpenseID,
		DistributionID:       m.DistributionID,
		MissionID:            m.MissionID,
		QuoteID:              m.QuoteID,
		PaymentScheduleID:    m.PaymentScheduleID,
		StudentID:            m.StudentID,
		MentorID:             m.MentorID,
		ProfessorID:          m.ProfessorID,
		LinkedTransactionID:  m.LinkedTransactionID,
		FXFees:               m.FXFees,
		Description:          m.Description,
		Notes:                m.Notes,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt,
	}
	if m.ExchangeRate.Valid {
		rate := m.ExchangeRate.Decimal
		d.ExchangeRate = &rate
	}
	return d
}

// ToDomainTransactions converts a slice of model Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
