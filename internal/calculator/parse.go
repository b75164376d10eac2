package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the longest decimal prefix of a value, so "12.5 kg"
// reads as 12.5 the way a browser number field hands it over.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Number coerces a raw field value to a float64. This is the only place
// user input becomes a number: absent, blank, unparsable and non-finite
// values all read as 0.
func Number(raw string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// Number returns the coerced numeric value of the named field.
func (v FieldValues) Number(name string) float64 {
	return Number(v[name])
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}
