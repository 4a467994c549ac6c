package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of decimal places amounts are rendered with.
const AmountPrecision = 2

// FormatAmount renders an amount with two fixed decimal places.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, AmountPrecision)
}

// FormatWithPrecision renders an amount rounded half away from zero with exactly precision places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// RoundAmount rounds an amount to the rendered precision, for JSON responses.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPrecision)
}
