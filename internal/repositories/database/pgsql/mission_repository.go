package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	"github.com/kbouri/performup-platform-sub000/internal/models"
	"github.com/kbouri/performup-platform-sub000/internal/utils/mapping"
)

type PgxMissionRepository struct {
	BaseRepository
}

func newPgxMissionRepository(pool *pgxpool.Pool) portsrepo.MissionRepository {
	return &PgxMissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MissionRepository = (*PgxMissionRepository)(nil)

func (r *PgxMissionRepository) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	query := `
		SELECT mission_id, title, status, amount, currency_code, hours_worked,
		       mentor_id, professor_id, student_id, mission_date, paid_at
		FROM missions
		WHERE mission_id = $1;
	`
	var m models.Mission
	err := r.Pool.QueryRow(ctx, query, missionID).Scan(
		&m.MissionID, &m.Title, &m.Status, &m.Amount, &m.CurrencyCode, &m.HoursWorked,
		&m.MentorID, &m.ProfessorID, &m.StudentID, &m.MissionDate, &m.PaidAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("mission " + missionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find mission "+missionID, err)
	}
	d := mapping.ToDomainMission(m)
	return &d, nil
}

// MarkMissionPaidInTx stamps paid_at. The guard makes two concurrent payouts for one
// mission serialize on the row; the loser sees zero rows affected. It also refuses a
// mission whose status moved away from VALIDATED after it was read.
func (r *PgxMissionRepository) MarkMissionPaidInTx(ctx context.Context, tx pgx.Tx, missionID string, paidAt time.Time) error {
	q := r.db(tx)

	tag, err := q.Exec(ctx, `
		UPDATE missions SET paid_at = $2
		WHERE mission_id = $1 AND paid_at IS NULL AND status = 'VALIDATED';
	`, missionID, paidAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark mission "+missionID+" as paid", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var (
		status   string
		existing *time.Time
	)
	err = q.QueryRow(ctx, `SELECT status, paid_at FROM missions WHERE mission_id = $1;`, missionID).Scan(&status, &existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("mission " + missionID)
		}
		return apperrors.NewAppError(500, "failed to read mission "+missionID, err)
	}
	if existing != nil {
		return apperrors.NewAppError(409, "mission "+missionID+" already paid", apperrors.ErrConflict)
	}
	return apperrors.NewAppError(400, "mission "+missionID+" is "+status, apperrors.ErrValidation)
}
