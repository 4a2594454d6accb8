package fiscal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minYear is the earliest representable fiscal year. Previous() below it
// reports ok=false rather than wrapping.
const minYear = 1900

// Period identifies a year+month accounting window. The zero value is not
// a valid period; construct via New, FromDate, or Parse.
type Period struct {
	Year  int
	Month int // 1-12
}

// New validates and builds a period.
func New(year, month int) (Period, error) {
	if year < minYear || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}
	return Period{Year: year, Month: month}, nil
}

// FromDate returns the period containing d.
func FromDate(d time.Time) Period {
	return Period{Year: d.Year(), Month: int(d.Month())}
}

// Parse reads the canonical "YYYY-MM" form.
func Parse(s string) (Period, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Period{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidPeriod, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidPeriod, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidPeriod, s)
	}
	return New(year, month)
}

// String renders the canonical "YYYY-MM" form used in persisted records.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Next returns the following calendar period.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Previous returns the preceding calendar period, or ok=false at the
// representable lower bound.
func (p Period) Previous() (Period, bool) {
	if p.Year == minYear && p.Month == 1 {
		return Period{}, false
	}
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}, true
	}
	return Period{Year: p.Year, Month: p.Month - 1}, true
}

// Before reports whether p is chronologically before q.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return d.Year() == p.Year && int(d.Month()) == p.Month
}
