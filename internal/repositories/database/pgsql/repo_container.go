package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories. cache may be nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.BalanceCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		MissionRepo:     newPgxMissionRepository(dbPool),
		SequenceRepo:    newPgxSequenceRepository(dbPool),
		BalanceCache:    cache,
	}
}
