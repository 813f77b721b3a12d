// Package money formats integer cents and basis points for display.
package money

import "github.com/shopspring/decimal"

// FormatCents renders cents as a decimal amount with two places: 1999 -> "19.99".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatCurrency prefixes FormatCents with symbol: "$19.99".
func FormatCurrency(cents int64, symbol string) string {
	return symbol + FormatCents(cents)
}

// FormatBps renders basis points as a percentage number: 825 -> "8.25".
func FormatBps(bps int) string {
	return decimal.New(int64(bps), -2).StringFixed(2)
}
