// Package money formats amounts for confirmation texts.
package money

import (
	"math"
	"strconv"
	"strings"
)

// Group inserts thousands separators into the integer part of a decimal
// string: "1234567.5" becomes "1,234,567.5". The fraction is left alone.
func Group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Dollars renders v as "$1,234.50". Whole amounts drop the cents when
// cents is false.
func Dollars(v float64, cents bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	decimals := 0
	if cents {
		decimals = 2
	}
	s := Group(strconv.FormatFloat(math.Abs(v), 'f', decimals, 64))
	if v < 0 {
		return "-$" + s
	}
	return "$" + s
}
