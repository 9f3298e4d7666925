package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// BalanceCache may be nil when no cache is configured.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryWithTx
	BankAccountRepo BankAccountReader
	PaymentRepo     PaymentReader
	MissionRepo     MissionRepository
	SequenceRepo    SequenceRepository
	BalanceCache    BalanceCache
}
