package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and closes the database transaction a ledger write runs in.
// Repositories expose *InTx methods that take the returned pgx.Tx so that number
// allocation, row inserts and side-effect updates commit together.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to call after Commit; it is a no-op then.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
