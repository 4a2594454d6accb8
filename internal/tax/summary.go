package tax

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrUnknownLine = errors.New("unknown tax line")

// Line is a named bucket amounts accumulate into for tax reporting. The
// set here is illustrative, not a jurisdiction's real schedule.
type Line string

const (
	LineGrossReceipts Line = "gross_receipts"
	LineCOGS          Line = "cost_of_goods_sold"
	LineOperating     Line = "operating_expenses"
	LineDepreciation  Line = "depreciation"
	LineSalesTax      Line = "sales_tax_collected"
)

var knownLines = map[Line]bool{
	LineGrossReceipts: true,
	LineCOGS:          true,
	LineOperating:     true,
	LineDepreciation:  true,
	LineSalesTax:      true,
}

// Summary accumulates posted amounts per tax line for one fiscal year.
type Summary struct {
	FiscalYear int
	lines      map[Line]decimal.Decimal
}

// NewSummary creates an empty summary for a year.
func NewSummary(fiscalYear int) *Summary {
	return &Summary{
		FiscalYear: fiscalYear,
		lines:      make(map[Line]decimal.Decimal),
	}
}

// Add accumulates an amount into a tax line.
func (s *Summary) Add(line Line, amount decimal.Decimal) error {
	if !knownLines[line] {
		return ErrUnknownLine
	}
	s.lines[line] = s.lines[line].Add(amount)
	return nil
}

// Amount returns the accumulated total for a line.
func (s *Summary) Amount(line Line) decimal.Decimal {
	return s.lines[line]
}

// TaxableIncome is gross receipts minus COGS, operating expenses, and
// depreciation.
func (s *Summary) TaxableIncome() decimal.Decimal {
	return s.lines[LineGrossReceipts].
		Sub(s.lines[LineCOGS]).
		Sub(s.lines[LineOperating]).
		Sub(s.lines[LineDepreciation])
}

// Lines returns the populated lines in stable order.
func (s *Summary) Lines() []Line {
	out := make([]Line, 0, len(s.lines))
	for l := range s.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
