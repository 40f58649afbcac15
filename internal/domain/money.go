package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencyPrinter = message.NewPrinter(language.English)

// OrZero returns the value of v, or zero when v is null.
func OrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// NewNullDecimal wraps d as a present value.
func NewNullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// RoundCents rounds half away from zero to two places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FloorCents truncates to two places.
func FloorCents(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(2)
}

// MinDecimal returns the smaller of a and b.
func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatCurrency renders d as US dollars, e.g. "$1,234.50" or "-$12.00".
// Formatting is exact at any magnitude.
func FormatCurrency(d decimal.Decimal) string {
	rounded := RoundCents(d)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	fixed := rounded.Abs().StringFixed(2)
	whole, cents := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	return sign + "$" + groupThousands(whole) + "." + cents
}

// groupThousands inserts separators into a string of digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return currencyPrinter.Sprint(number.Decimal(n))
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
