package utils

import "strconv"

// FormatAmount renders a fractional amount with two decimal places for
// customer-facing messages. No currency code is modeled.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
