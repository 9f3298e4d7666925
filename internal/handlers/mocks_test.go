package handlers_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockJournalService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionWithAccounts, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithAccounts), args.Error(1)
}

func (m *MockJournalService) GetBankAccount(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockJournalService) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockJournalService) CreatePaymentTransaction(ctx context.Context, payment domain.Payment, createdBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, payment, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CreateExpenseTransaction(ctx context.Context, expense domain.Expense, createdBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, expense, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CreateMissionPaymentTransaction(ctx context.Context, mission domain.Mission, paymentAccountID string, createdBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, mission, paymentAccountID, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CreateFXTransactions(ctx context.Context, params domain.FXExchangeParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CreateTransferTransaction(ctx context.Context, params domain.TransferParams) (*domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CreateDistributionTransaction(ctx context.Context, distributionID string, sourceAccountID string, amount int64, currency domain.Currency, createdBy string) (*domain.Transaction, error) {
	args := m.Called(ctx, distributionID, sourceAccountID, amount, currency, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalService) CalculateAccountBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalService) RecomputeAccountBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalService) CalculateTotalsByCurrency(ctx context.Context) (map[domain.Currency]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Currency]int64), args.Error(1)
}

// --- Mock ValidationService ---
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateAccountCurrency(ctx context.Context, accountID string, expected domain.Currency) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockValidationService) ValidatePaymentAccount(payment domain.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *MockValidationService) ValidateAllocationAmount(paymentAmount int64, allocations []domain.PaymentAllocation) error {
	return m.Called(paymentAmount, allocations).Error(0)
}

func (m *MockValidationService) ValidateMissionPayment(mission domain.Mission) error {
	return m.Called(mission).Error(0)
}

func (m *MockValidationService) ValidatePositiveAmount(amount int64, fieldName string) error {
	return m.Called(amount, fieldName).Error(0)
}

func (m *MockValidationService) ValidateCurrency(currency string) (domain.Currency, error) {
	args := m.Called(currency)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockValidationService) ValidateAccountExists(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockValidationService) DetectDuplicatePayment(ctx context.Context, query domain.DuplicatePaymentQuery) (*domain.Payment, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockValidationService) GenerateAlerts(ctx context.Context, input domain.AlertInput) ([]domain.Alert, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GenerateTransactionNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReferenceService) GenerateQuoteNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReferenceService) NextTransactionNumberInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	args := m.Called(ctx, tx)
	return args.String(0), args.Error(1)
}

func (m *MockReferenceService) ResyncTransactionNumbers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
