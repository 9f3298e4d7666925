package repositories

import (
	"context"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	// FindBankAccountByID returns apperrors.ErrNotFound when the account does not exist.
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)

	// FindBankAccountsByIDs returns the accounts that exist, keyed by ID. Missing IDs are simply absent.
	FindBankAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.BankAccount, error)

	// ListActiveBankAccounts returns every active account.
	ListActiveBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}
