package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

func draftEntry(t *testing.T) *Entry {
	t.Helper()
	e, err := New(Params{
		Number:      "JE-2025-000001",
		Date:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines:       balancedLines("acct-cash", "acct-revenue", "100.00"),
		CreatedBy:   "user-1",
	})
	require.NoError(t, err)
	return e
}

func openPeriod() *fiscal.State {
	return fiscal.Open(fiscal.Period{Year: 2025, Month: 1})
}

func closedPeriod(t *testing.T) *fiscal.State {
	t.Helper()
	s := openPeriod()
	if err := s.Close("user-1", fiscal.StatusClosed); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNew_ValidatesAtConstruction(t *testing.T) {
	_, err := New(Params{
		Number:      "JE-2025-000001",
		Date:        time.Now(),
		Description: "Unbalanced",
		Lines: []Line{
			{AccountID: "a", Direction: Debit, Amount: dec("100.00")},
			{AccountID: "b", Direction: Credit, Amount: dec("90.00")},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestNew_RequiresDescription(t *testing.T) {
	_, err := New(Params{
		Number: "JE-2025-000001",
		Date:   time.Now(),
		Lines:  balancedLines("a", "b", "10.00"),
	})
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestNew_DefaultsToManual(t *testing.T) {
	e := draftEntry(t)
	assert.Equal(t, TypeManual, e.Type)
	assert.Equal(t, StatusDraft, e.Status)
}

func TestEntry_PostVoidLifecycle(t *testing.T) {
	e := draftEntry(t)
	period := openPeriod()

	require.NoError(t, e.Post("user-2", period))
	assert.Equal(t, StatusPosted, e.Status)
	assert.Equal(t, "user-2", e.PostedBy)
	assert.True(t, e.TotalDebits().Equal(dec("100.00")))
	assert.True(t, e.TotalCredits().Equal(dec("100.00")))

	// Second post fails: not Draft anymore.
	assert.ErrorIs(t, e.Post("user-2", period), ErrNotDraft)

	require.NoError(t, e.Void("user-3", "correction"))
	assert.Equal(t, StatusVoided, e.Status)
	assert.Equal(t, "correction", e.VoidReason)
	assert.Len(t, e.Lines, 2, "voiding keeps lines")
}

func TestEntry_PostClosedPeriodFails(t *testing.T) {
	e := draftEntry(t)
	err := e.Post("user-2", closedPeriod(t))
	assert.ErrorIs(t, err, ErrPeriodNotOpen)
	assert.Equal(t, StatusDraft, e.Status)
}

func TestEntry_VoidRequiresPosted(t *testing.T) {
	e := draftEntry(t)
	assert.ErrorIs(t, e.Void("user-1", "mistake"), ErrNotPosted)
}

func TestEntry_VoidReasonTooShort(t *testing.T) {
	e := draftEntry(t)
	require.NoError(t, e.Post("user-2", openPeriod()))
	assert.ErrorIs(t, e.Void("user-2", "no"), ErrVoidReason)
	assert.Equal(t, StatusPosted, e.Status)
}

func TestEntry_UpdateOnlyDraft(t *testing.T) {
	e := draftEntry(t)
	require.NoError(t, e.Update(e.Date, "Amended description"))
	assert.Equal(t, "Amended description", e.Description)

	require.NoError(t, e.Post("user-2", openPeriod()))
	assert.ErrorIs(t, e.Update(e.Date, "Nope"), ErrNotDraft)
	assert.ErrorIs(t, e.UpdateLines(balancedLines("a", "b", "5.00")), ErrNotDraft)
}

func TestEntry_UpdateLinesRevalidates(t *testing.T) {
	e := draftEntry(t)
	err := e.UpdateLines([]Line{
		{AccountID: "a", Direction: Debit, Amount: dec("10.00")},
	})
	require.Error(t, err)
	assert.Len(t, e.Lines, 2, "failed update leaves lines untouched")
}

func TestEntry_PeriodDerivedFromDate(t *testing.T) {
	e := draftEntry(t)
	assert.Equal(t, "2025-01", e.Period().String())
}

func TestFormatNumber_RoundTrip(t *testing.T) {
	n := FormatNumber(2025, 123)
	assert.Equal(t, "JE-2025-000123", n)

	year, seq, err := ParseNumber(n)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 123, seq)
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, s := range []string{"", "JE-2025", "XX-2025-000001", "JE-25-000001", "JE-2025-1", "JE-abcd-000001"} {
		_, _, err := ParseNumber(s)
		assert.ErrorIs(t, err, ErrInvalidNumber, s)
	}
}
