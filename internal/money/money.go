// Package money converts provider decimal amounts into int64 minor units so
// aggregation never accumulates binary floating-point drift.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid_amount")

// ParseMinorUnits parses a decimal amount string such as "100.00" into minor
// units (centavos). Sub-cent precision is rounded half up, matching how the
// billing provider itself settles amounts.
func ParseMinorUnits(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return amount.Shift(2).Round(0).IntPart(), nil
}

// FormatMinorUnits renders minor units back into a plain decimal string.
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
