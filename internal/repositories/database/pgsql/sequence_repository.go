package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextSequenceValue bumps the counter row for prefix. The upsert takes a row lock, so
// concurrent callers in different transactions get distinct values; a rolled-back
// caller releases its value to the next one.
func (r *PgxSequenceRepository) NextSequenceValue(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	query := `
		INSERT INTO reference_counters (prefix, last_value, updated_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (prefix) DO UPDATE
			SET last_value = reference_counters.last_value + 1, updated_at = NOW()
		RETURNING last_value;
	`
	var value int64
	if err := r.db(tx).QueryRow(ctx, query, prefix).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate sequence value for "+prefix, err)
	}
	return value, nil
}

// SyncSequenceWithTransactions repairs a counter that fell behind the numbers already
// issued, e.g. after rows were imported. It never lowers the counter.
func (r *PgxSequenceRepository) SyncSequenceWithTransactions(ctx context.Context, prefix string) (int64, error) {
	query := `
		INSERT INTO reference_counters (prefix, last_value, updated_at)
		SELECT $1, COALESCE(MAX(CAST(substring(transaction_number FROM '([0-9]+)$') AS BIGINT)), 0), NOW()
		FROM transactions
		WHERE starts_with(transaction_number, $1)
		ON CONFLICT (prefix) DO UPDATE
			SET last_value = GREATEST(reference_counters.last_value, EXCLUDED.last_value), updated_at = NOW()
		RETURNING last_value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, prefix).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to resync sequence for "+prefix, err)
	}
	return value, nil
}
