package repositories

import (
	"context"
	"time"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// PaymentReader is used by duplicate detection to look at recent payments.
type PaymentReader interface {
	// FindPaymentsForParties returns payments dated within [from, to] whose student, mentor
	// and professor IDs equal every non-nil ID in query. Amount is not filtered here.
	FindPaymentsForParties(ctx context.Context, query domain.DuplicatePaymentQuery, from, to time.Time) ([]domain.Payment, error)
}
