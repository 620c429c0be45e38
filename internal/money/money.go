// Package money parses and compares currency amounts scraped from rendered
// storefront text.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the epsilon used for all monetary comparisons. Amounts pass
// through lossy text-to-number parsing, so exact equality would spuriously
// fail on floating-point and formatting noise.
const Tolerance = 0.01

// ParseAmount converts rendered currency text such as "$1,590.00" into a
// numeric amount. It strips every character that is not a digit or a decimal
// point and parses the remainder; empty or unparsable input yields 0.
//
// The stripping is deliberately naive: thousands separators are removed
// rather than interpreted, so "$1,234.56" parses as 1234.56 and a locale
// using "," as the decimal mark would be misread. The storefront renders
// amounts with a single decimal point and no thousands separator, which
// keeps this safe for the values it is applied to.
func ParseAmount(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// WithinTolerance reports whether two amounts differ by strictly less than
// Tolerance. A difference of exactly 0.01 does not pass.
func WithinTolerance(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
