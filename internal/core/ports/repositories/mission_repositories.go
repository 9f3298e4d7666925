package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// MissionReader loads mission records owned by the missions module.
type MissionReader interface {
	// FindMissionByID returns apperrors.ErrNotFound when the mission does not exist.
	FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error)
}

// MissionWriter records the payout side effect on a mission.
type MissionWriter interface {
	// MarkMissionPaidInTx sets paid_at only while the mission is VALIDATED and unpaid. It
	// returns apperrors.ErrConflict when the mission was already paid, apperrors.ErrValidation
	// when it is no longer VALIDATED, and apperrors.ErrNotFound when it does not exist.
	MarkMissionPaidInTx(ctx context.Context, tx pgx.Tx, missionID string, paidAt time.Time) error
}

// MissionRepository combines mission reads and the paid marker.
type MissionRepository interface {
	MissionReader
	MissionWriter
}
