package services

import (
	"fmt"

	"github.com/kbouri/performup-platform-sub000/internal/apperrors"
)

// Each sentinel wraps the apperrors category handlers map to a status code.
var (
	ErrAccountNotFound          = fmt.Errorf("%w: bank account not found", apperrors.ErrNotFound)
	ErrAccountInactive          = fmt.Errorf("%w: bank account is inactive", apperrors.ErrValidation)
	ErrCurrencyMismatch         = fmt.Errorf("%w: account currency does not match", apperrors.ErrValidation)
	ErrUnsupportedCurrency      = fmt.Errorf("%w: unsupported currency", apperrors.ErrValidation)
	ErrNonPositiveAmount        = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	ErrMissingReceivingAccount  = fmt.Errorf("%w: missing receiving account", apperrors.ErrValidation)
	ErrMissingPayingAccount     = fmt.Errorf("%w: missing paying account", apperrors.ErrValidation)
	ErrAllocationExceedsPayment = fmt.Errorf("%w: allocations exceed payment amount", apperrors.ErrValidation)
	ErrMissionNotValidated      = fmt.Errorf("%w: mission is not validated", apperrors.ErrValidation)
	ErrMissionAlreadyPaid       = fmt.Errorf("%w: mission already paid", apperrors.ErrConflict)
	ErrSameCurrencyFX           = fmt.Errorf("%w: source and destination currencies are identical, use a transfer", apperrors.ErrValidation)
	ErrSameAccountTransfer      = fmt.Errorf("%w: source and destination accounts are identical", apperrors.ErrValidation)
	ErrInvalidExchangeRate      = fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	ErrNegativeFees             = fmt.Errorf("%w: fees cannot be negative", apperrors.ErrValidation)
	ErrMissingActor             = fmt.Errorf("%w: acting user is required", apperrors.ErrValidation)
	ErrUnknownAlertOperation    = fmt.Errorf("%w: unknown alert operation", apperrors.ErrValidation)
)
