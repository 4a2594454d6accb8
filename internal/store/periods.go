package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

const (
	perNumFields    = 10
	perColID        = 0
	perColPeriod    = 1
	perColStatus    = 2
	perColClosedBy  = 3
	perColClosedAt  = 4
	perColReopenBy  = 5
	perColReopenAt  = 6
	perColReopenWhy = 7
	perColLockedBy  = 8
	perColLockedAt  = 9
)

// ReadPeriods reads periods.csv.
func ReadPeriods(r io.Reader) ([]*fiscal.State, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = perNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading periods CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var states []*fiscal.State
	for i, rec := range records[1:] {
		st, err := unmarshalPeriod(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		states = append(states, st)
	}
	return states, nil
}

// WritePeriods writes periods.csv.
func WritePeriods(w io.Writer, states []*fiscal.State) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "period", "status", "closed_by", "closed_at",
		"reopened_by", "reopened_at", "reopen_reason", "locked_by", "locked_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, st := range states {
		if err := cw.Write(marshalPeriod(st)); err != nil {
			return fmt.Errorf("writing period %s: %w", st.Period, err)
		}
	}
	return cw.Error()
}

func marshalPeriod(st *fiscal.State) []string {
	row := make([]string, perNumFields)
	row[perColID] = st.ID
	row[perColPeriod] = st.Period.String()
	row[perColStatus] = string(st.Status)
	row[perColClosedBy] = st.ClosedBy
	row[perColClosedAt] = fmtTime(st.ClosedAt)
	row[perColReopenBy] = st.ReopenedBy
	row[perColReopenAt] = fmtTime(st.ReopenedAt)
	row[perColReopenWhy] = st.ReopenReason
	row[perColLockedBy] = st.LockedBy
	row[perColLockedAt] = fmtTime(st.LockedAt)
	return row
}

func unmarshalPeriod(rec []string) (*fiscal.State, error) {
	p, err := fiscal.Parse(rec[perColPeriod])
	if err != nil {
		return nil, err
	}
	closedAt, err := parseTime(rec[perColClosedAt])
	if err != nil {
		return nil, err
	}
	reopenedAt, err := parseTime(rec[perColReopenAt])
	if err != nil {
		return nil, err
	}
	lockedAt, err := parseTime(rec[perColLockedAt])
	if err != nil {
		return nil, err
	}

	return fiscal.RehydrateState(fiscal.State{
		ID:           rec[perColID],
		Period:       p,
		Status:       fiscal.Status(rec[perColStatus]),
		ClosedBy:     rec[perColClosedBy],
		ClosedAt:     closedAt,
		ReopenedBy:   rec[perColReopenBy],
		ReopenedAt:   reopenedAt,
		ReopenReason: rec[perColReopenWhy],
		LockedBy:     rec[perColLockedBy],
		LockedAt:     lockedAt,
	}), nil
}
