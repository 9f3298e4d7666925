package services

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ReferenceSvc mints human-readable, per-year sequential reference numbers.
type ReferenceSvc interface {
	// GenerateTransactionNumber returns the next TXN-<year>-NNNNN number.
	GenerateTransactionNumber(ctx context.Context) (string, error)

	// GenerateQuoteNumber returns the next QUOTE-<year>-NNN number.
	GenerateQuoteNumber(ctx context.Context) (string, error)

	// NextTransactionNumberInTx allocates inside tx so the number is only consumed if tx commits.
	NextTransactionNumberInTx(ctx context.Context, tx pgx.Tx) (string, error)

	// ResyncTransactionNumbers moves the current year's transaction counter past every
	// number already stored. The change commits independently of any open write.
	ResyncTransactionNumbers(ctx context.Context) error
}
