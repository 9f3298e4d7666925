package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/utils"
)

// Alert thresholds in minor units.
const (
	LargePaymentThreshold  int64 = 1_000_000
	LargeExpenseThreshold  int64 = 500_000
	LargeMissionThreshold  int64 = 200_000
	LargeTransferThreshold int64 = 1_000_000

	// DuplicateAmountTolerancePct bounds how far a similar payment's amount may drift.
	DuplicateAmountTolerancePct int64 = 5
	// DuplicateWindow is how far either side of the payment date to look.
	DuplicateWindow = 24 * time.Hour
)

type validationService struct {
	BaseService
	accountRepo portsrepo.BankAccountReader
	paymentRepo portsrepo.PaymentReader
	formatter   *utils.AmountFormatter
}

// ValidationOption configures optional validation service dependencies.
type ValidationOption func(*validationService)

// WithAmountFormatter sets the formatter used in alert messages.
func WithAmountFormatter(f *utils.AmountFormatter) ValidationOption {
	return func(s *validationService) {
		if f != nil {
			s.formatter = f
		}
	}
}

// NewValidationService creates the hard-validation and soft-alert service.
func NewValidationService(
	accountRepo portsrepo.BankAccountReader,
	paymentRepo portsrepo.PaymentReader,
	base BaseService,
	opts ...ValidationOption,
) portssvc.ValidationSvcFacade {
	s := &validationService{
		BaseService: base,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

func (s *validationService) ValidateAccountExists(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		s.LogError(ctx, err, "Failed to load bank account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load bank account %s: %w", accountID, err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s (%s)", ErrAccountInactive, account.AccountName, account.ID)
	}
	return account, nil
}

func (s *validationService) ValidateAccountCurrency(ctx context.Context, accountID string, expected domain.Currency) (*domain.BankAccount, error) {
	account, err := s.ValidateAccountExists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Currency != expected {
		return nil, fmt.Errorf("%w: account %s (%s) holds %s, expected %s",
			ErrCurrencyMismatch, account.AccountName, account.ID, account.Currency, expected)
	}
	return account, nil
}

func (s *validationService) ValidatePaymentAccount(payment domain.Payment) error {
	if payment.BankAccountID == nil || *payment.BankAccountID == "" {
		return ErrMissingReceivingAccount
	}
	return nil
}

func (s *validationService) ValidateAllocationAmount(paymentAmount int64, allocations []domain.PaymentAllocation) error {
	var total int64
	for _, a := range allocations {
		if a.Amount <= 0 {
			return fmt.Errorf("%w: allocation for schedule %s", ErrNonPositiveAmount, a.PaymentScheduleID)
		}
		total += a.Amount
	}
	if total > paymentAmount {
		return fmt.Errorf("%w: allocated %d, payment %d", ErrAllocationExceedsPayment, total, paymentAmount)
	}
	return nil
}

func (s *validationService) ValidateMissionPayment(mission domain.Mission) error {
	if mission.Status != domain.MissionValidated {
		return fmt.Errorf("%w: mission %s is %s", ErrMissionNotValidated, mission.ID, mission.Status)
	}
	if mission.IsPaid() {
		return fmt.Errorf("%w: mission %s", ErrMissionAlreadyPaid, mission.ID)
	}
	return nil
}

func (s *validationService) ValidatePositiveAmount(amount int64, fieldName string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %s is %d", ErrNonPositiveAmount, fieldName, amount)
	}
	return nil
}

func (s *validationService) ValidateCurrency(currency string) (domain.Currency, error) {
	c, err := domain.ParseCurrency(currency)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedCurrency, err)
	}
	return c, nil
}

// DetectDuplicatePayment looks for a payment from the same parties within DuplicateWindow of
// the candidate date whose amount is within DuplicateAmountTolerancePct of the candidate.
func (s *validationService) DetectDuplicatePayment(ctx context.Context, query domain.DuplicatePaymentQuery) (*domain.Payment, error) {
	if query.StudentID == nil && query.MentorID == nil && query.ProfessorID == nil {
		return nil, nil
	}
	from := query.PaymentDate.Add(-DuplicateWindow)
	to := query.PaymentDate.Add(DuplicateWindow)

	candidates, err := s.paymentRepo.FindPaymentsForParties(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to look up recent payments: %w", err)
	}
	for i := range candidates {
		if withinTolerance(candidates[i].Amount, query.Amount, DuplicateAmountTolerancePct) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}

// withinTolerance reports whether existing lies in [amount*(100-pct)%, amount*(100+pct)%].
func withinTolerance(existing, amount, pct int64) bool {
	return existing*100 >= amount*(100-pct) && existing*100 <= amount*(100+pct)
}

func (s *validationService) GenerateAlerts(ctx context.Context, input domain.AlertInput) ([]domain.Alert, error) {
	var alerts []domain.Alert
	switch in := input.(type) {
	case domain.PaymentAlertInput:
		alerts = s.paymentAlerts(ctx, in.Payment)
	case domain.ExpenseAlertInput:
		alerts = s.expenseAlerts(in.Expense)
	case domain.MissionAlertInput:
		alerts = s.missionAlerts(in.Mission)
	case domain.TransferAlertInput:
		alerts = s.transferAlerts(in.Amount, in.Currency)
	default:
		return nil, ErrUnknownAlertOperation
	}
	s.Metrics.AlertsRaised(alerts)
	return alerts, nil
}

func (s *validationService) paymentAlerts(ctx context.Context, p domain.Payment) []domain.Alert {
	alerts := []domain.Alert{}
	if p.Amount > LargePaymentThreshold {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertWarning,
			Type:    domain.AlertLargeAmount,
			Message: fmt.Sprintf("Large payment: %s", s.format(p.Amount, p.Currency)),
			Data:    map[string]any{"amount": p.Amount, "currency": p.Currency, "threshold": LargePaymentThreshold},
		})
	}

	query := domain.DuplicatePaymentQuery{
		StudentID:   p.StudentID,
		MentorID:    p.MentorID,
		ProfessorID: p.ProfessorID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
	}
	if p.ID != "" {
		query.ExcludePaymentID = &p.ID
	}
	dup, err := s.DetectDuplicatePayment(ctx, query)
	if err != nil {
		// Advisory only; never fail the payment because the lookup failed.
		s.LogError(ctx, err, "Duplicate payment detection failed", slog.String("payment_id", p.ID))
		return alerts
	}
	if dup != nil {
		alerts = append(alerts, domain.Alert{
			Level: domain.AlertWarning,
			Type:  domain.AlertPotentialDuplicate,
			Message: fmt.Sprintf("Similar payment of %s on %s already recorded",
				s.format(dup.Amount, dup.Currency), dup.PaymentDate.Format(time.DateOnly)),
			Data: map[string]any{"existingPaymentId": dup.ID, "existingAmount": dup.Amount},
		})
	}
	return alerts
}

func (s *validationService) expenseAlerts(e domain.Expense) []domain.Alert {
	alerts := []domain.Alert{}
	if e.Amount > LargeExpenseThreshold {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertWarning,
			Type:    domain.AlertLargeAmount,
			Message: fmt.Sprintf("Large expense: %s", s.format(e.Amount, e.Currency)),
			Data:    map[string]any{"amount": e.Amount, "currency": e.Currency, "threshold": LargeExpenseThreshold},
		})
	}
	if e.Supplier == nil || strings.TrimSpace(*e.Supplier) == "" {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertInfo,
			Type:    domain.AlertMissingSupplier,
			Message: "Expense has no supplier",
		})
	}
	return alerts
}

func (s *validationService) missionAlerts(m domain.Mission) []domain.Alert {
	alerts := []domain.Alert{}
	if m.Amount > LargeMissionThreshold {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertInfo,
			Type:    domain.AlertLargeMission,
			Message: fmt.Sprintf("Large mission: %s", s.format(m.Amount, m.Currency)),
			Data:    map[string]any{"amount": m.Amount, "currency": m.Currency, "threshold": LargeMissionThreshold},
		})
	}
	if m.HoursWorked == nil || !m.HoursWorked.IsPositive() {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertInfo,
			Type:    domain.AlertMissingHours,
			Message: "Mission has no recorded hours",
		})
	}
	return alerts
}

func (s *validationService) transferAlerts(amount int64, currency domain.Currency) []domain.Alert {
	alerts := []domain.Alert{}
	if amount > LargeTransferThreshold {
		alerts = append(alerts, domain.Alert{
			Level:   domain.AlertWarning,
			Type:    domain.AlertLargeTransfer,
			Message: fmt.Sprintf("Large transfer: %s", s.format(amount, currency)),
			Data:    map[string]any{"amount": amount, "currency": currency, "threshold": LargeTransferThreshold},
		})
	}
	return alerts
}

func (s *validationService) format(amount int64, currency domain.Currency) string {
	if s.formatter != nil {
		return s.formatter.Format(amount, currency)
	}
	return utils.FormatAccountingAmount(amount, currency)
}
