package crud

import (
	"strings"

	helper "mantenimiento_backend/internals/helpers"

	"github.com/shopspring/decimal"
)

// CheckMinMax rejects a stock range whose minimum is above its maximum.
// A zero maximum means "no maximum configured".
func CheckMinMax(minField string, min int, maxField string, max int) error {
	if max > 0 && min > max {
		return &helper.AppError{
			Kind:    helper.KindValidation,
			Message: minField + " must not exceed " + maxField,
			Fields:  map[string][]string{minField: {"must be <= " + maxField}},
		}
	}
	return nil
}

// NonNegative rejects negative money values.
func NonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return helper.FieldErr(field, field+" must be >= 0")
	}
	return nil
}

// FirstErr returns the first non-nil error.
func FirstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Trim trims every pointed-to string in place.
func Trim(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}
