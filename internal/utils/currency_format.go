package utils

import (
	"fmt"
	"strings"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ToCents converts a major-unit amount to integer minor units, rounding half away from zero.
// Example: 19.994 -> 1999, 19.995 -> 2000
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// FromCents converts minor units back to a major-unit decimal. The conversion is exact.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// AmountFormatter renders ledger amounts with the grouping rules of a locale.
type AmountFormatter struct {
	printer *message.Printer
	decimal string
}

// NewAmountFormatter creates a formatter for the given locale.
func NewAmountFormatter(tag language.Tag) *AmountFormatter {
	p := message.NewPrinter(tag)
	// The printer exposes no separator lookup, so read it off a rendered sample.
	sep := strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 1.5), "1"), "5")
	if sep == "" {
		sep = "."
	}
	return &AmountFormatter{printer: p, decimal: sep}
}

// Format renders cents with two decimals followed by the currency code. It works on the
// integer parts, so every int64 amount is rendered exactly.
// Example (French): 199900, EUR -> "1 999,00 EUR"
func (f *AmountFormatter) Format(cents int64, currency domain.Currency) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = uint64(-(cents + 1)) + 1
	}
	major := f.printer.Sprintf("%d", abs/100)
	return fmt.Sprintf("%s%s%s%02d %s", sign, major, f.decimal, abs%100, currency)
}

var defaultAmountFormatter = NewAmountFormatter(language.French)

// FormatAccountingAmount formats with the business default locale (French).
func FormatAccountingAmount(cents int64, currency domain.Currency) string {
	return defaultAmountFormatter.Format(cents, currency)
}
