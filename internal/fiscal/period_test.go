package fiscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_String(t *testing.T) {
	p, err := New(2025, 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-03", p.String())
}

func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01", "2025-12", "1900-01", "2024-06"} {
		p, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"2025", "2025-13", "2025-00", "25-01", "2025-1", "abcd-ef", "1899-12"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidPeriod, s)
	}
}

func TestPeriod_NextPrevious(t *testing.T) {
	p := Period{Year: 2025, Month: 12}
	assert.Equal(t, Period{Year: 2026, Month: 1}, p.Next())

	prev, ok := Period{Year: 2025, Month: 1}.Previous()
	require.True(t, ok)
	assert.Equal(t, Period{Year: 2024, Month: 12}, prev)
}

func TestPeriod_PreviousAtLowerBound(t *testing.T) {
	_, ok := Period{Year: 1900, Month: 1}.Previous()
	assert.False(t, ok)
}

func TestPeriod_FromDateContains(t *testing.T) {
	d := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	p := FromDate(d)
	assert.Equal(t, "2025-06", p.String())
	assert.True(t, p.Contains(d))
	assert.False(t, p.Contains(d.AddDate(0, 1, 0)))
}

func TestPeriod_Before(t *testing.T) {
	a := Period{Year: 2024, Month: 12}
	b := Period{Year: 2025, Month: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
