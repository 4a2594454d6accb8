package asset

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// ScheduleLine is one projected month of depreciation for an asset.
type ScheduleLine struct {
	Period      fiscal.Period
	Amount      decimal.Decimal
	Accumulated decimal.Decimal
	BookValue   decimal.Decimal
}

// BuildSchedule projects the asset's full depreciation schedule from its
// start period. The projection simulates ApplyDepreciation month by month,
// so the final book value lands exactly on salvage.
func BuildSchedule(a *FixedAsset) ([]ScheduleLine, error) {
	start := fiscal.FromDate(a.DepreciationStart)
	accumulated := a.Accumulated
	bookValue := a.BookValue

	var lines []ScheduleLine
	p := start
	for elapsed := 0; elapsed < a.LifeMonths*2; elapsed++ {
		headroom := bookValue.Sub(a.Salvage)
		if !headroom.IsPositive() {
			break
		}
		amount, err := a.Method.Calculate(Input{
			Cost:          a.Cost,
			Salvage:       a.Salvage,
			LifeMonths:    a.LifeMonths,
			BookValue:     bookValue,
			Accumulated:   accumulated,
			PeriodMonths:  1,
			ElapsedMonths: elapsed,
		})
		if err != nil {
			return nil, err
		}
		if amount.GreaterThan(headroom) || elapsed == a.LifeMonths-1 {
			amount = headroom
		}
		if !amount.IsPositive() {
			break
		}
		accumulated = accumulated.Add(amount)
		bookValue = a.Cost.Sub(accumulated)
		lines = append(lines, ScheduleLine{
			Period:      p,
			Amount:      amount,
			Accumulated: accumulated,
			BookValue:   bookValue,
		})
		p = p.Next()
	}
	return lines, nil
}

// RunStatus is the lifecycle of a depreciation batch.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// RunResult records the outcome for one asset inside a run.
type RunResult struct {
	AssetID string
	Amount  decimal.Decimal
	Err     string // empty on success
}

// Run is a depreciation batch over many assets for one fiscal period.
type Run struct {
	ID        string
	Period    fiscal.Period
	Status    RunStatus
	Results   []RunResult
	Total     decimal.Decimal
	StartedBy string
	StartedAt time.Time
	EndedAt   time.Time
}

// NewRun opens a depreciation run. The target period must be open for
// posting; the caller passes the period state it loaded.
func NewRun(p fiscal.Period, gate interface{ CanPostEntries() bool }, startedBy string) (*Run, error) {
	if gate == nil || !gate.CanPostEntries() {
		return nil, fmt.Errorf("%w: %s", ErrRunPeriodNotOpen, p)
	}
	return &Run{
		ID:        uuid.NewString(),
		Period:    p,
		Status:    RunPending,
		StartedBy: startedBy,
		StartedAt: time.Now().UTC(),
	}, nil
}

// Record adds one asset's outcome to the run.
func (r *Run) Record(assetID string, amount decimal.Decimal, err error) {
	res := RunResult{AssetID: assetID, Amount: amount}
	if err != nil {
		res.Err = err.Error()
	} else {
		r.Total = r.Total.Add(amount)
	}
	r.Results = append(r.Results, res)
}

// Finish closes the run; it fails if any asset failed.
func (r *Run) Finish() {
	r.Status = RunCompleted
	for _, res := range r.Results {
		if res.Err != "" {
			r.Status = RunFailed
			break
		}
	}
	r.EndedAt = time.Now().UTC()
}
