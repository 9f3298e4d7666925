package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is one of the closed set of currencies the platform books money in.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyMAD Currency = "MAD"
	CurrencyUSD Currency = "USD"
)

// SupportedCurrencies lists every currency in display order.
var SupportedCurrencies = []Currency{CurrencyEUR, CurrencyMAD, CurrencyUSD}

// ErrUnsupportedCurrency is returned when a currency code is outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyMAD, CurrencyUSD:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converts a raw code (case-insensitive, surrounding spaces ignored) to a Currency.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return c, nil
}
