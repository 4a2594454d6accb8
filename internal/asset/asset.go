package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// Status is the fixed asset lifecycle state.
type Status string

const (
	StatusDraft            Status = "draft"
	StatusActive           Status = "active"
	StatusFullyDepreciated Status = "fully-depreciated"
	StatusDisposed         Status = "disposed"
	StatusWrittenOff       Status = "written-off"
	StatusSuspended        Status = "suspended"
)

// DisposalMethod records how an asset left the books.
type DisposalMethod string

const (
	DisposalSale     DisposalMethod = "sale"
	DisposalScrap    DisposalMethod = "scrap"
	DisposalDonation DisposalMethod = "donation"
	DisposalTradeIn  DisposalMethod = "trade-in"
)

// FixedAsset is the depreciable asset aggregate. BookValue is always
// Cost - Accumulated and never drops below Salvage. Version backs
// optimistic concurrency at the repository boundary: every mutating
// method increments it, and Save rejects stale versions.
type FixedAsset struct {
	ID                string
	CategoryID        string
	Name              string
	SerialNumber      string
	Cost              decimal.Decimal
	Salvage           decimal.Decimal
	LifeMonths        int
	Method            Method
	Accumulated       decimal.Decimal
	BookValue         decimal.Decimal
	Status            Status
	AcquiredAt        time.Time
	DepreciationStart time.Time

	// DepreciatedThrough is the latest period with a booked depreciation
	// charge; the zero value means nothing has been booked yet.
	DepreciatedThrough fiscal.Period
	SuspendReason      string

	DisposedAt     time.Time
	DisposalMethod DisposalMethod
	DisposalValue  decimal.Decimal
	DisposalGain   decimal.Decimal // negative = loss
	DisposalReason string

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFixedAsset validates and creates a draft asset.
func NewFixedAsset(name, categoryID string, cost, salvage decimal.Decimal, lifeMonths int, method Method, acquired, depreciationStart time.Time) (*FixedAsset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !cost.IsPositive() {
		return nil, ErrInvalidCost
	}
	if salvage.IsNegative() || salvage.GreaterThan(cost) {
		return nil, ErrInvalidSalvage
	}
	if lifeMonths < 1 {
		return nil, ErrInvalidLife
	}
	switch method {
	case StraightLine, DecliningBalance, SumOfYearsDigits, UnitsOfProduction:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	now := time.Now().UTC()
	return &FixedAsset{
		ID:                uuid.NewString(),
		CategoryID:        categoryID,
		Name:              strings.TrimSpace(name),
		Cost:              cost,
		Salvage:           salvage,
		LifeMonths:        lifeMonths,
		Method:            method,
		Accumulated:       decimal.Zero,
		BookValue:         cost,
		Status:            StatusDraft,
		AcquiredAt:        acquired,
		DepreciationStart: depreciationStart,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// RehydrateAsset rebuilds an asset from persisted state without validation.
func RehydrateAsset(a FixedAsset) *FixedAsset {
	return &a
}

// Activate puts a draft asset into service.
func (a *FixedAsset) Activate() error {
	if a.Status != StatusDraft {
		return fmt.Errorf("%w: %s", ErrNotDraft, a.Status)
	}
	a.Status = StatusActive
	a.bump()
	return nil
}

// Suspend pauses depreciation.
func (a *FixedAsset) Suspend(reason string) error {
	if a.Status != StatusActive {
		return fmt.Errorf("%w: %s", ErrNotActive, a.Status)
	}
	a.Status = StatusSuspended
	a.SuspendReason = strings.TrimSpace(reason)
	a.bump()
	return nil
}

// Resume reactivates a suspended asset.
func (a *FixedAsset) Resume() error {
	if a.Status != StatusSuspended {
		return fmt.Errorf("%w: %s", ErrNotSuspended, a.Status)
	}
	a.Status = StatusActive
	a.SuspendReason = ""
	a.bump()
	return nil
}

// Depreciable reports whether depreciation applies as of a date: the asset
// is active and its depreciation start date has passed.
func (a *FixedAsset) Depreciable(asOf time.Time) bool {
	return a.Status == StatusActive && !asOf.Before(a.DepreciationStart)
}

// DepreciationFor runs the asset's method over its own figures.
func (a *FixedAsset) DepreciationFor(periodMonths, elapsedMonths int) (decimal.Decimal, error) {
	return a.Method.Calculate(Input{
		Cost:          a.Cost,
		Salvage:       a.Salvage,
		LifeMonths:    a.LifeMonths,
		BookValue:     a.BookValue,
		Accumulated:   a.Accumulated,
		PeriodMonths:  periodMonths,
		ElapsedMonths: elapsedMonths,
	})
}

// ApplyDepreciation books a depreciation amount for a period. The period
// must be on or after the depreciation start date and later than any
// period already booked, so a rerun for the same month cannot charge the
// asset twice. The amount is capped so book value never passes below
// salvage; hitting salvage transitions the asset to FullyDepreciated.
func (a *FixedAsset) ApplyDepreciation(amount decimal.Decimal, p fiscal.Period) error {
	if a.Status != StatusActive {
		return fmt.Errorf("%w: %s", ErrNotActive, a.Status)
	}
	if p.Before(fiscal.FromDate(a.DepreciationStart)) {
		return fmt.Errorf("%w: %s starts %s", ErrNotStarted, p, fiscal.FromDate(a.DepreciationStart))
	}
	if a.DepreciatedThrough != (fiscal.Period{}) && !a.DepreciatedThrough.Before(p) {
		return fmt.Errorf("%w: %s booked through %s", ErrPeriodBooked, p, a.DepreciatedThrough)
	}
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	headroom := a.BookValue.Sub(a.Salvage)
	if amount.GreaterThan(headroom) {
		amount = headroom
	}
	a.Accumulated = a.Accumulated.Add(amount)
	a.BookValue = a.Cost.Sub(a.Accumulated)
	a.DepreciatedThrough = p
	if a.BookValue.LessThanOrEqual(a.Salvage) {
		a.Status = StatusFullyDepreciated
	}
	a.bump()
	return nil
}

// Dispose removes the asset from service and records the gain or loss
// against its book value. Terminal.
func (a *FixedAsset) Dispose(method DisposalMethod, value decimal.Decimal, reason string) error {
	if a.Status == StatusDisposed || a.Status == StatusWrittenOff {
		return fmt.Errorf("%w: %s", ErrDisposed, a.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyDisposeReason
	}
	a.DisposedAt = time.Now().UTC()
	a.DisposalMethod = method
	a.DisposalValue = value
	a.DisposalGain = value.Sub(a.BookValue)
	a.DisposalReason = reason
	a.Status = StatusDisposed
	a.bump()
	return nil
}

// WriteOff records a total loss: disposal with zero proceeds. Terminal.
func (a *FixedAsset) WriteOff(reason string) error {
	if a.Status == StatusDisposed || a.Status == StatusWrittenOff {
		return fmt.Errorf("%w: %s", ErrDisposed, a.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyDisposeReason
	}
	a.DisposedAt = time.Now().UTC()
	a.DisposalValue = decimal.Zero
	a.DisposalGain = decimal.Zero.Sub(a.BookValue)
	a.DisposalReason = reason
	a.Status = StatusWrittenOff
	a.bump()
	return nil
}

func (a *FixedAsset) bump() {
	a.Version++
	a.UpdatedAt = time.Now().UTC()
}
