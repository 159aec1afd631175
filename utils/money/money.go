// Package money formats and parses rupiah amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders d rounded to whole rupiah with Indonesian thousands
// separators, e.g. 1500000 -> "1.500.000". Amounts of any size keep all of
// their digits.
func Format(d decimal.Decimal) string {
	digits := d.Round(0).StringFixed(0)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.Grow(len(sign) + len(digits) + len(digits)/3)
	b.WriteString(sign)
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// FormatIDR is Format with the "Rp " prefix.
func FormatIDR(d decimal.Decimal) string {
	return "Rp " + Format(d)
}

// Parse reads a user-typed amount. Comma thousands separators and
// surrounding spaces are stripped, as the admin money mask inserts them.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(StripSeparators(s))
}

// StripSeparators removes the comma separators the money mask adds so the
// value can be validated as numeric.
func StripSeparators(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
