package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// TransactionReader defines read operations over the ledger.
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when the row does not exist.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page of rows matching filter, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// CountTransactions returns the number of rows matching filter, ignoring Limit/Offset.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error)

	// SumAccountFlows aggregates every row touching accountID.
	// credits is the total where the account is destination, debits where it is source.
	SumAccountFlows(ctx context.Context, accountID string) (credits int64, debits int64, err error)
}

// TransactionWriter appends rows to the ledger. There is no update or delete.
type TransactionWriter interface {
	// InsertTransactionsInTx inserts rows inside tx. A clash on transaction_number
	// is reported as apperrors.ErrDuplicate so the caller can retry the unit.
	InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines ledger reads and writes.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx adds transaction control to the ledger repository.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
