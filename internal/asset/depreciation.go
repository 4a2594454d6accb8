package asset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Method selects the depreciation formula. Behavior lives in one
// exhaustive switch in Calculate rather than per-method types.
type Method string

const (
	StraightLine      Method = "straight-line"
	DecliningBalance  Method = "declining-balance"
	SumOfYearsDigits  Method = "sum-of-years-digits"
	UnitsOfProduction Method = "units-of-production"
)

// Input carries everything any formula needs. Straight-line uses cost,
// salvage, and life; declining balance additionally uses the current book
// value; sum-of-years-digits needs the months already elapsed; units of
// production replaces time with usage.
type Input struct {
	Cost          decimal.Decimal
	Salvage       decimal.Decimal
	LifeMonths    int
	BookValue     decimal.Decimal
	Accumulated   decimal.Decimal
	PeriodMonths  int
	ElapsedMonths int

	UnitsThisPeriod decimal.Decimal
	TotalUnits      decimal.Decimal
}

// two is the double-declining factor.
var two = decimal.NewFromInt(2)

// Calculate returns the depreciation amount for one period. The result is
// a raw formula output; capping at book value minus salvage happens in
// FixedAsset.ApplyDepreciation.
func (m Method) Calculate(in Input) (decimal.Decimal, error) {
	if in.LifeMonths < 1 {
		return decimal.Zero, ErrInvalidLife
	}
	if in.PeriodMonths < 1 {
		in.PeriodMonths = 1
	}
	depreciable := in.Cost.Sub(in.Salvage)
	if !depreciable.IsPositive() {
		return decimal.Zero, nil
	}

	switch m {
	case StraightLine:
		perMonth := depreciable.Div(decimal.NewFromInt(int64(in.LifeMonths)))
		return perMonth.Mul(decimal.NewFromInt(int64(in.PeriodMonths))).Round(2), nil

	case DecliningBalance:
		// Double-declining: monthly rate 2/life applied to book value.
		rate := two.Div(decimal.NewFromInt(int64(in.LifeMonths)))
		return in.BookValue.Mul(rate).Mul(decimal.NewFromInt(int64(in.PeriodMonths))).Round(2), nil

	case SumOfYearsDigits:
		n := int64(in.LifeMonths)
		digits := decimal.NewFromInt(n * (n + 1) / 2)
		total := decimal.Zero
		for i := 0; i < in.PeriodMonths; i++ {
			remaining := n - int64(in.ElapsedMonths) - int64(i)
			if remaining < 1 {
				break
			}
			total = total.Add(depreciable.Mul(decimal.NewFromInt(remaining)).Div(digits))
		}
		return total.Round(2), nil

	case UnitsOfProduction:
		if !in.TotalUnits.IsPositive() || in.UnitsThisPeriod.IsNegative() {
			return decimal.Zero, ErrMissingUnits
		}
		return depreciable.Mul(in.UnitsThisPeriod).Div(in.TotalUnits).Round(2), nil

	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
}
