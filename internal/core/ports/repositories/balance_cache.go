package repositories

import "context"

// BalanceCache stores derived account balances. The ledger stays the source of truth;
// a miss or a cache failure always falls back to recomputing from rows.
//
// Every Invalidate bumps a per-account generation. A reader takes the generation before
// summing the ledger and hands it back to SetBalance, which drops the value if an
// invalidation happened in between.
type BalanceCache interface {
	// GetBalance reports ok=false on a miss.
	GetBalance(ctx context.Context, accountID string) (balance int64, ok bool, err error)
	Generation(ctx context.Context, accountID string) (int64, error)
	// SetBalance reports stored=false when generation is no longer current.
	SetBalance(ctx context.Context, accountID string, balance int64, generation int64) (stored bool, err error)
	Invalidate(ctx context.Context, accountIDs ...string) error
}
