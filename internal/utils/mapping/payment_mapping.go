package mapping

import (
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/kbouri/performup-platform-sub000/internal/models"
)

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:                m.PaymentID,
		Amount:            m.Amount,
		Currency:          domain.Currency(m.CurrencyCode),
		PaymentDate:       m.PaymentDate,
		StudentID:         m.StudentID,
		MentorID:          m.MentorID,
		ProfessorID:       m.ProfessorID,
		BankAccountID:     m.BankAccountID,
		PaymentScheduleID: m.PaymentScheduleID,
		QuoteID:           m.QuoteID,
		Notes:             m.Notes,
	}
}
