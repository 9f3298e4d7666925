package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	"github.com/kbouri/performup-platform-sub000/internal/models"
	"github.com/kbouri/performup-platform-sub000/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentReader {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

// FindPaymentsForParties returns payments in [from, to] for the given parties, oldest first.
func (r *PgxPaymentRepository) FindPaymentsForParties(ctx context.Context, q domain.DuplicatePaymentQuery, from, to time.Time) ([]domain.Payment, error) {
	w := &whereBuilder{}
	if q.StudentID != nil {
		w.add("student_id = ?", *q.StudentID)
	}
	if q.MentorID != nil {
		w.add("mentor_id = ?", *q.MentorID)
	}
	if q.ProfessorID != nil {
		w.add("professor_id = ?", *q.ProfessorID)
	}
	if len(w.conds) == 0 {
		return nil, nil
	}
	if q.ExcludePaymentID != nil {
		w.add("payment_id <> ?", *q.ExcludePaymentID)
	}
	w.add("payment_date BETWEEN ? AND ?", from, to)

	query := `
		SELECT payment_id, amount, currency_code, payment_date, student_id, mentor_id, professor_id,
		       bank_account_id, payment_schedule_id, quote_id, notes
		FROM payments` + w.clause() + ` ORDER BY payment_date ASC;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent payments", err)
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.Amount, &m.CurrencyCode, &m.PaymentDate, &m.StudentID, &m.MentorID, &m.ProfessorID,
			&m.BankAccountID, &m.PaymentScheduleID, &m.QuoteID, &m.Notes,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment", err)
		}
		out = append(out, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payments", err)
	}
	return out, nil
}
