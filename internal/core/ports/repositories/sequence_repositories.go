package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// SequenceRepository hands out per-prefix counters atomically.
type SequenceRepository interface {
	// NextSequenceValue increments and returns the counter for prefix, starting at 1.
	// When tx is nil the increment commits on its own.
	NextSequenceValue(ctx context.Context, tx pgx.Tx, prefix string) (int64, error)

	// SyncSequenceWithTransactions raises the counter for prefix to at least the highest
	// stored transaction number carrying that prefix, and returns the counter. It commits
	// on its own.
	SyncSequenceWithTransactions(ctx context.Context, prefix string) (int64, error)
}
