package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance for debit/credit equality. Amounts are exact
// decimals, but imported and converted data may carry sub-cent noise.
var Epsilon = decimal.RequireFromString("0.01")

// ValidationError describes a single double-entry invariant violation.
type ValidationError struct {
	Invariant   int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d: %s", e.Invariant, e.Description)
}

// ValidateLines enforces the double-entry invariants on a set of lines:
//
//  1. at least two lines
//  2. at least one debit and one credit line
//  3. every amount strictly positive (sign lives in Direction, never value)
//  4. sum(debits) equals sum(credits) within Epsilon
//  5. every line references an account
func ValidateLines(lines []Line) []ValidationError {
	var errs []ValidationError

	if len(lines) < 2 {
		errs = append(errs, ValidationError{
			Invariant:   1,
			Description: fmt.Sprintf("entry has %d line(s), need at least 2", len(lines)),
		})
	}

	var hasDebit, hasCredit bool
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		switch line.Direction {
		case Debit:
			hasDebit = true
			totalDebit = totalDebit.Add(line.Amount)
		case Credit:
			hasCredit = true
			totalCredit = totalCredit.Add(line.Amount)
		default:
			errs = append(errs, ValidationError{
				Invariant:   3,
				Description: fmt.Sprintf("line %d has unknown direction %q", i+1, line.Direction),
			})
		}

		if !line.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Description: fmt.Sprintf("line %d amount %s is not positive", i+1, line.Amount),
			})
		}

		if line.AccountID == "" {
			errs = append(errs, ValidationError{
				Invariant:   5,
				Description: fmt.Sprintf("line %d has no account", i+1),
			})
		}
	}

	if len(lines) > 0 && (!hasDebit || !hasCredit) {
		errs = append(errs, ValidationError{
			Invariant:   2,
			Description: "entry needs at least one debit and one credit line",
		})
	}

	if diff := totalDebit.Sub(totalCredit).Abs(); diff.GreaterThan(Epsilon) {
		errs = append(errs, ValidationError{
			Invariant:   4,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	return errs
}

// joinErrors flattens validation errors into a single error.
func joinErrors(errs []ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	msg := errs[0].Error()
	for _, e := range errs[1:] {
		msg += "; " + e.Error()
	}
	return fmt.Errorf("validation failed: %s", msg)
}
