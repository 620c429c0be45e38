// Package reconcile cross-checks the arithmetic invariants of a cart
// snapshot. Violations are structured results, not errors: whether a failed
// check fails the test run is the caller's decision.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/aannayev/QaTask/internal/cart"
	"github.com/aannayev/QaTask/internal/money"
)

// LineReport is the result of checking unit price × quantity = subtotal for
// every line item. Diagnostics holds one line per item, pass or fail, for
// audit trails.
type LineReport struct {
	Valid       bool
	Diagnostics []string
}

// TotalReport is the result of checking subtotal + shipping + tax = total.
type TotalReport struct {
	Valid   bool
	Details string
}

// VerifyLineInvariants checks every line item of the snapshot. The overall
// result is the AND over all lines; each line gets a diagnostic regardless of
// outcome.
func VerifyLineInvariants(snap cart.Snapshot) LineReport {
	report := LineReport{Valid: true}

	for _, item := range snap.Items {
		expected := item.UnitPrice * float64(item.Quantity)
		ok := money.WithinTolerance(item.Subtotal, expected)
		if !ok {
			report.Valid = false
		}

		report.Diagnostics = append(report.Diagnostics, fmt.Sprintf(
			"%s: %s × %d = %s (actual: %s) - %s",
			item.Name,
			money.FormatAmount(item.UnitPrice),
			item.Quantity,
			money.FormatAmount(expected),
			money.FormatAmount(item.Subtotal),
			passMark(ok),
		))
	}

	return report
}

// VerifyTotalInvariant checks the snapshot's displayed total against the sum
// of its displayed subtotal, shipping and tax. The UI's own subtotal is
// authoritative here rather than a re-derived line sum: server-side rounding
// or discount logic may legitimately differ from a naive sum over lines.
func VerifyTotalInvariant(snap cart.Snapshot) TotalReport {
	lineSum := 0.0
	for _, item := range snap.Items {
		lineSum += item.Subtotal
	}

	expected := snap.Subtotal + snap.Shipping + snap.Tax
	valid := money.WithinTolerance(snap.Total, expected)

	var b strings.Builder
	fmt.Fprintf(&b, "Items subtotal:     %s\n", money.FormatAmount(lineSum))
	fmt.Fprintf(&b, "Displayed subtotal: %s\n", money.FormatAmount(snap.Subtotal))
	fmt.Fprintf(&b, "Shipping:           %s\n", money.FormatAmount(snap.Shipping))
	fmt.Fprintf(&b, "Tax:                %s\n", money.FormatAmount(snap.Tax))
	fmt.Fprintf(&b, "Expected total:     %s\n", money.FormatAmount(expected))
	fmt.Fprintf(&b, "Actual total:       %s\n", money.FormatAmount(snap.Total))
	fmt.Fprintf(&b, "Valid:              %s", passMark(valid))

	return TotalReport{Valid: valid, Details: b.String()}
}

func passMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
