package domain_test

import (
	"testing"
	"time"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_EffectOn(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		accountID   string
		want        int64
	}{
		{
			name:        "credit to destination",
			transaction: domain.Transaction{Amount: 1500, DestinationAccountID: stringPtr("acc-1")},
			accountID:   "acc-1",
			want:        1500,
		},
		{
			name:        "debit from source",
			transaction: domain.Transaction{Amount: 1500, SourceAccountID: stringPtr("acc-1")},
			accountID:   "acc-1",
			want:        -1500,
		},
		{
			name: "transfer seen from destination",
			transaction: domain.Transaction{
				Amount:               700,
				SourceAccountID:      stringPtr("acc-1"),
				DestinationAccountID: stringPtr("acc-2"),
			},
			accountID: "acc-2",
			want:      700,
		},
		{
			name:        "unrelated account",
			transaction: domain.Transaction{Amount: 1500, DestinationAccountID: stringPtr("acc-1")},
			accountID:   "acc-9",
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.EffectOn(tt.accountID))
		})
	}
}

func TestTransaction_AccountIDs(t *testing.T) {
	txn := domain.Transaction{SourceAccountID: stringPtr("a"), DestinationAccountID: stringPtr("b")}
	assert.Equal(t, []string{"a", "b"}, txn.AccountIDs())

	txn = domain.Transaction{DestinationAccountID: stringPtr("b")}
	assert.Equal(t, []string{"b"}, txn.AccountIDs())
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.FXExchange.IsValid())
	assert.True(t, domain.StudentPayment.IsValid())
	assert.False(t, domain.TransactionType("REFUND").IsValid())
}

func TestParseCurrency(t *testing.T) {
	c, err := domain.ParseCurrency(" eur ")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyEUR, c)

	c, err = domain.ParseCurrency("MAD")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyMAD, c)

	_, err = domain.ParseCurrency("GBP")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestDeriveScheduleStatus(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	tests := []struct {
		name  string
		paid  int64
		total int64
		due   time.Time
		want  domain.ScheduleStatus
	}{
		{"nothing paid, not yet due", 0, 1000, future, domain.SchedulePending},
		{"partially paid and overdue stays partial", 500, 1000, past, domain.SchedulePartial},
		{"fully paid after due date", 1000, 1000, past, domain.SchedulePaid},
		{"nothing paid, past due", 0, 1000, past, domain.ScheduleOverdue},
		{"overpaid", 1200, 1000, future, domain.SchedulePaid},
		{"due exactly now is not overdue", 0, 1000, now, domain.SchedulePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeriveScheduleStatus(tt.paid, tt.total, tt.due, now))
		})
	}
}

func TestMission_PayeeType(t *testing.T) {
	m := domain.Mission{MentorID: stringPtr("mentor-1"), ProfessorID: stringPtr("prof-1")}
	assert.Equal(t, domain.MentorPayment, m.PayeeType())

	m = domain.Mission{ProfessorID: stringPtr("prof-1")}
	assert.Equal(t, domain.ProfessorPayment, m.PayeeType())
}

func stringPtr(s string) *string {
	return &s
}
