package services

import (
	"context"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// JournalReaderSvc defines read operations over the ledger.
type JournalReaderSvc interface {
	// GetTransactions returns a filtered, paginated window of the ledger, newest first.
	GetTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)

	// GetTransaction returns a single row with its account summaries.
	GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithAccounts, error)

	// GetBankAccount returns an account, active or not.
	GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// GetMission returns the stored mission record.
	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)
}

// JournalWriterSvc is the only way rows enter the ledger.
type JournalWriterSvc interface {
	CreatePaymentTransaction(ctx context.Context, payment domain.Payment, createdBy string) (*domain.Transaction, error)
	CreateExpenseTransaction(ctx context.Context, expense domain.Expense, createdBy string) (*domain.Transaction, error)
	CreateMissionPaymentTransaction(ctx context.Context, mission domain.Mission, paymentAccountID string, createdBy string) (*domain.Transaction, error)

	// CreateFXTransactions returns both legs; the second links back to the first.
	CreateFXTransactions(ctx context.Context, params domain.FXExchangeParams) ([]domain.Transaction, error)
	CreateTransferTransaction(ctx context.Context, params domain.TransferParams) (*domain.Transaction, error)
	CreateDistributionTransaction(ctx context.Context, distributionID string, sourceAccountID string, amount int64, currency domain.Currency, createdBy string) (*domain.Transaction, error)
}

// JournalCalculatorSvc derives balances from the ledger.
type JournalCalculatorSvc interface {
	CalculateAccountBalance(ctx context.Context, accountID string) (int64, error)

	// RecomputeAccountBalance ignores any cached value and refreshes it.
	RecomputeAccountBalance(ctx context.Context, accountID string) (int64, error)

	CalculateTotalsByCurrency(ctx context.Context) (map[domain.Currency]int64, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalCalculatorSvc
}
