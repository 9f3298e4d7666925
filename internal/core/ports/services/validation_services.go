package services

import (
	"context"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// ValidationSvc holds the hard checks that block a write.
type ValidationSvc interface {
	// ValidateAccountCurrency requires the account to exist, be active and hold expected.
	ValidateAccountCurrency(ctx context.Context, accountID string, expected domain.Currency) (*domain.BankAccount, error)
	ValidatePaymentAccount(payment domain.Payment) error
	ValidateAllocationAmount(paymentAmount int64, allocations []domain.PaymentAllocation) error
	ValidateMissionPayment(mission domain.Mission) error
	ValidatePositiveAmount(amount int64, fieldName string) error
	ValidateCurrency(currency string) (domain.Currency, error)
	ValidateAccountExists(ctx context.Context, accountID string) (*domain.BankAccount, error)
}

// AlertSvc holds the advisory checks. Nothing here blocks a write.
type AlertSvc interface {
	// DetectDuplicatePayment returns the first similar recent payment, or nil.
	DetectDuplicatePayment(ctx context.Context, query domain.DuplicatePaymentQuery) (*domain.Payment, error)
	GenerateAlerts(ctx context.Context, input domain.AlertInput) ([]domain.Alert, error)
}

// ValidationSvcFacade combines hard validations and soft alerts.
type ValidationSvcFacade interface {
	ValidationSvc
	AlertSvc
}
