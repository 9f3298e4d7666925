package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// CurrencyTag is the binding tag that accepts only supported currency codes.
const CurrencyTag = "ledgercurrency"

// RegisterValidators adds the ledger binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(CurrencyTag, func(fl validator.FieldLevel) bool {
		return domain.Currency(fl.Field().String()).IsValid()
	})
}
