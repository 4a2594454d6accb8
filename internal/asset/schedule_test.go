package asset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

func TestBuildSchedule_StraightLine(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewFixedAsset("Server", "cat-1", dec("3600"), dec("0"), 36, StraightLine, start, start)
	require.NoError(t, err)
	require.NoError(t, a.Activate())

	lines, err := BuildSchedule(a)
	require.NoError(t, err)
	require.Len(t, lines, 36)

	assert.Equal(t, fiscal.Period{Year: 2025, Month: 1}, lines[0].Period)
	assert.Equal(t, "100.00", lines[0].Amount.StringFixed(2))
	assert.Equal(t, fiscal.Period{Year: 2027, Month: 12}, lines[35].Period)
	assert.True(t, lines[35].BookValue.IsZero(), "final book value %s", lines[35].BookValue)

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	assert.Equal(t, "3600.00", total.StringFixed(2))
}

func TestBuildSchedule_DecliningBalanceLandsOnSalvage(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewFixedAsset("Truck", "cat-1", dec("20000"), dec("2000"), 24, DecliningBalance, start, start)
	require.NoError(t, err)
	require.NoError(t, a.Activate())

	lines, err := BuildSchedule(a)
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	last := lines[len(lines)-1]
	assert.Equal(t, "2000.00", last.BookValue.StringFixed(2))

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
		assert.True(t, l.BookValue.GreaterThanOrEqual(dec("2000")), "book value below salvage at %s", l.Period)
	}
	assert.Equal(t, "18000.00", total.StringFixed(2), "schedule total equals cost minus salvage")
}

func TestRun_RequiresOpenPeriod(t *testing.T) {
	p := fiscal.Period{Year: 2025, Month: 2}
	state := fiscal.Open(p)
	require.NoError(t, state.Close("user-1", fiscal.StatusClosed))

	_, err := NewRun(p, state, "user-1")
	assert.ErrorIs(t, err, ErrRunPeriodNotOpen)
}

func TestRun_RecordsAndFinishes(t *testing.T) {
	p := fiscal.Period{Year: 2025, Month: 2}
	run, err := NewRun(p, fiscal.Open(p), "user-1")
	require.NoError(t, err)

	run.Record("asset-1", dec("100.00"), nil)
	run.Record("asset-2", dec("250.00"), nil)
	run.Finish()

	assert.Equal(t, RunCompleted, run.Status)
	assert.Equal(t, "350.00", run.Total.StringFixed(2))
}

func TestRun_FailureMarksRun(t *testing.T) {
	p := fiscal.Period{Year: 2025, Month: 2}
	run, err := NewRun(p, fiscal.Open(p), "user-1")
	require.NoError(t, err)

	run.Record("asset-1", dec("100.00"), nil)
	run.Record("asset-2", decimal.Zero, ErrNotActive)
	run.Finish()

	assert.Equal(t, RunFailed, run.Status)
	assert.Equal(t, "100.00", run.Total.StringFixed(2), "failed asset contributes nothing")
}
