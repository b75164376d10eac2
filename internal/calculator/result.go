package calculator

import (
	"math"
	"math/big"
	"strings"
	"unicode"
)

// NotAvailable is displayed in place of a value that has no finite result,
// typically a ratio over a zero field area or zero revenue.
const NotAvailable = "N/A"

// Result is one labelled output of a calculation.
type Result struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResultValues is the ordered output of one calculation.
type ResultValues []Result

// Get returns the formatted value stored under key.
func (rv ResultValues) Get(key string) (string, bool) {
	for _, r := range rv {
		if r.Key == key {
			return r.Value, true
		}
	}
	return "", false
}

// Map flattens the results for callers that do not care about order.
func (rv ResultValues) Map() map[string]string {
	m := make(map[string]string, len(rv))
	for _, r := range rv {
		m[r.Key] = r.Value
	}
	return m
}

func result(key, value string) Result {
	return Result{Key: key, Label: Label(key), Value: value}
}

// fixed formats v with the given number of decimals, or NotAvailable when v
// is NaN or infinite. Rounding works on the exact binary value of v and
// sends ties away from zero, so 0.125 becomes "0.13" while 1.005 (stored as
// 1.00499...) becomes "1.00". Zero of either sign prints unsigned.
func fixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	if v == 0 {
		v = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Rat).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, new(big.Rat).SetInt(scale))

	n, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(scaled.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}
	if math.Signbit(v) {
		return "-" + digits
	}
	return digits
}

// Label turns a camelCase result key into a display label:
// "estimatedRevenue" becomes "Estimated Revenue".
func Label(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
