package mapping

import (
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/kbouri/performup-platform-sub000/internal/models"
)

// ToDomainMission converts a model Mission to a domain Mission
func ToDomainMission(m models.Mission) domain.Mission {
	d := domain.Mission{
		ID:          m.MissionID,
		Title:       m.Title,
		Status:      domain.MissionStatus(m.Status),
		Amount:      m.Amount,
		Currency:    domain.Currency(m.CurrencyCode),
		MentorID:    m.MentorID,
		ProfessorID: m.ProfessorID,
		StudentID:   m.StudentID,
		MissionDate: m.MissionDate,
		PaidAt:      m.PaidAt,
	}
	if m.HoursWorked.Valid {
		hours := m.HoursWorked.Decimal
		d.HoursWorked = &hours
	}
	return d
}
