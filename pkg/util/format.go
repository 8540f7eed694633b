package util

import "fmt"

// FormatEuro renders a currency amount with the euro symbol and two decimals.
func FormatEuro(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}
