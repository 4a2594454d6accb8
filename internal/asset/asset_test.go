package asset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

func activeAsset(t *testing.T) *FixedAsset {
	t.Helper()
	acquired := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewFixedAsset("Delivery Van", "cat-1", dec("12000"), dec("2000"), 20, StraightLine, acquired, acquired)
	require.NoError(t, err)
	require.NoError(t, a.Activate())
	return a
}

func TestNewFixedAsset_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewFixedAsset("", "cat-1", dec("100"), dec("0"), 12, StraightLine, now, now)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewFixedAsset("X", "cat-1", dec("0"), dec("0"), 12, StraightLine, now, now)
	assert.ErrorIs(t, err, ErrInvalidCost)

	_, err = NewFixedAsset("X", "cat-1", dec("100"), dec("200"), 12, StraightLine, now, now)
	assert.ErrorIs(t, err, ErrInvalidSalvage)

	_, err = NewFixedAsset("X", "cat-1", dec("100"), dec("0"), 0, StraightLine, now, now)
	assert.ErrorIs(t, err, ErrInvalidLife)

	_, err = NewFixedAsset("X", "cat-1", dec("100"), dec("0"), 12, "sraight-line", now, now)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestFixedAsset_BookValueInvariant(t *testing.T) {
	a := activeAsset(t)
	p := fiscal.Period{Year: 2025, Month: 1}

	require.NoError(t, a.ApplyDepreciation(dec("500"), p))
	assert.Equal(t, "500.00", a.Accumulated.StringFixed(2))
	assert.Equal(t, "11500.00", a.BookValue.StringFixed(2))
	assert.True(t, a.Cost.Sub(a.Accumulated).Equal(a.BookValue))
}

func TestFixedAsset_DepreciationCappedAtSalvage(t *testing.T) {
	a := activeAsset(t)
	p := fiscal.Period{Year: 2025, Month: 1}

	// Way more than the 10000 of headroom: capped, lands on salvage.
	require.NoError(t, a.ApplyDepreciation(dec("99999"), p))
	assert.Equal(t, "2000.00", a.BookValue.StringFixed(2))
	assert.Equal(t, StatusFullyDepreciated, a.Status)

	// Once fully depreciated no further depreciation applies.
	assert.ErrorIs(t, a.ApplyDepreciation(dec("1"), p.Next()), ErrNotActive)
}

func TestFixedAsset_ExactSalvageTransitionsOnce(t *testing.T) {
	a := activeAsset(t)
	p := fiscal.Period{Year: 2025, Month: 1}

	require.NoError(t, a.ApplyDepreciation(dec("9999"), p))
	assert.Equal(t, StatusActive, a.Status)

	require.NoError(t, a.ApplyDepreciation(dec("1"), p.Next()))
	assert.Equal(t, StatusFullyDepreciated, a.Status)
}

func TestFixedAsset_Depreciable(t *testing.T) {
	acquired := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a, err := NewFixedAsset("Lathe", "cat-1", dec("5000"), dec("0"), 60, StraightLine, acquired, acquired)
	require.NoError(t, err)

	before := acquired.AddDate(0, -1, 0)
	after := acquired.AddDate(0, 1, 0)

	assert.False(t, a.Depreciable(after), "draft asset never depreciates")
	require.NoError(t, a.Activate())
	assert.False(t, a.Depreciable(before), "start date not reached")
	assert.True(t, a.Depreciable(after))

	require.NoError(t, a.Suspend("flood damage assessment"))
	assert.False(t, a.Depreciable(after))
	require.NoError(t, a.Resume())
	assert.True(t, a.Depreciable(after))
}

func TestFixedAsset_Dispose(t *testing.T) {
	a := activeAsset(t)
	require.NoError(t, a.ApplyDepreciation(dec("4000"), fiscal.Period{Year: 2025, Month: 1}))

	// Book value 8000, sold for 8500: gain 500.
	require.NoError(t, a.Dispose(DisposalSale, dec("8500"), "sold to dealer"))
	assert.Equal(t, StatusDisposed, a.Status)
	assert.Equal(t, "500.00", a.DisposalGain.StringFixed(2))

	assert.ErrorIs(t, a.Dispose(DisposalScrap, decimal.Zero, "again"), ErrDisposed)
	assert.ErrorIs(t, a.WriteOff("again"), ErrDisposed)
	assert.ErrorIs(t, a.ApplyDepreciation(dec("1"), fiscal.Period{Year: 2025, Month: 2}), ErrNotActive)
}

func TestFixedAsset_DisposeAtLoss(t *testing.T) {
	a := activeAsset(t)
	require.NoError(t, a.Dispose(DisposalScrap, dec("10000"), "obsolete"))
	assert.Equal(t, "-2000.00", a.DisposalGain.StringFixed(2))
}

func TestFixedAsset_WriteOff(t *testing.T) {
	a := activeAsset(t)
	require.NoError(t, a.WriteOff("destroyed in fire"))
	assert.Equal(t, StatusWrittenOff, a.Status)
	assert.Equal(t, "-12000.00", a.DisposalGain.StringFixed(2))
}

func TestFixedAsset_VersionIncrements(t *testing.T) {
	a := activeAsset(t)
	v := a.Version // Activate already bumped once

	require.NoError(t, a.ApplyDepreciation(dec("100"), fiscal.Period{Year: 2025, Month: 1}))
	assert.Equal(t, v+1, a.Version)

	require.NoError(t, a.Suspend("audit"))
	require.NoError(t, a.Resume())
	assert.Equal(t, v+3, a.Version)
}

func TestFixedAsset_DepreciationBeforeStartRejected(t *testing.T) {
	a := activeAsset(t) // depreciation starts 2025-01-01

	err := a.ApplyDepreciation(dec("500"), fiscal.Period{Year: 2024, Month: 12})
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Equal(t, "0.00", a.Accumulated.StringFixed(2))
}

func TestFixedAsset_SamePeriodNotBookedTwice(t *testing.T) {
	a := activeAsset(t)
	p := fiscal.Period{Year: 2025, Month: 1}

	require.NoError(t, a.ApplyDepreciation(dec("500"), p))
	assert.ErrorIs(t, a.ApplyDepreciation(dec("500"), p), ErrPeriodBooked)
	assert.ErrorIs(t, a.ApplyDepreciation(dec("500"), fiscal.Period{Year: 2024, Month: 12}), ErrNotStarted)
	assert.Equal(t, "500.00", a.Accumulated.StringFixed(2))
	assert.Equal(t, p, a.DepreciatedThrough)

	require.NoError(t, a.ApplyDepreciation(dec("500"), p.Next()))
	assert.Equal(t, "1000.00", a.Accumulated.StringFixed(2))
}

func TestFixedAsset_NegativeDepreciationRejected(t *testing.T) {
	a := activeAsset(t)
	assert.ErrorIs(t, a.ApplyDepreciation(dec("-1"), fiscal.Period{Year: 2025, Month: 1}), ErrNegativeAmount)
}
