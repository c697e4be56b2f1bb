package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currency = "so'm"

// FormatMoney renders an amount rounded to whole units with thousands separated
// by spaces, e.g. "60 000 so'm". Rounding is for display only.
func FormatMoney(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String() + " " + currency
}
