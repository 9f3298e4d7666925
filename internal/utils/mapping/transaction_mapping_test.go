package mapping

import (
	"testing"
	"time"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_ExchangeRate(t *testing.T) {
	rate := decimal.RequireFromString("10.85")
	fees := int64(150)
	src := "acc-eur"
	d := domain.Transaction{
		ID:              "01J0000000000000000000000A",
		Type:            domain.FXExchange,
		Amount:          100000,
		Currency:        domain.CurrencyEUR,
		SourceAccountID: &src,
		ExchangeRate:    &rate,
		FXFees:          &fees,
		Date:            time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	m := ToModelTransaction(d)
	assert.True(t, m.ExchangeRate.Valid)
	assert.Equal(t, "FX_EXCHANGE", m.TransactionType)

	back := ToDomainTransaction(m)
	require.NotNil(t, back.ExchangeRate)
	assert.True(t, rate.Equal(*back.ExchangeRate))
	assert.Equal(t, d.SourceAccountID, back.SourceAccountID)
	assert.Nil(t, back.DestinationAccountID)
}

func TestTransactionMapping_NoExchangeRate(t *testing.T) {
	m := ToModelTransaction(domain.Transaction{ID: "x", Type: domain.ExpenseTxn})
	assert.False(t, m.ExchangeRate.Valid)
	assert.Nil(t, ToDomainTransaction(m).ExchangeRate)
}
