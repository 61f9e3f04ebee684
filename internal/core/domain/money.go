package domain

import "fmt"

// Money is an amount of in-game currency in cents. All balances and coin
// values are fixed-point; no float arithmetic touches the ledger.
type Money = int64

// FormatMoney renders cents as a "12.34" style decimal string for messages.
func FormatMoney(cents Money) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
