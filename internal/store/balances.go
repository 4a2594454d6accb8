package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

const (
	balNumFields  = 8
	balColID      = 0
	balColAccount = 1
	balColPeriod  = 2
	balColOpening = 3
	balColDebit   = 4
	balColCredit  = 5
	balColClosing = 6
	balColUAt     = 7
)

// ReadBalances reads balances.csv.
func ReadBalances(r io.Reader) ([]*fiscal.Balance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = balNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading balances CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var balances []*fiscal.Balance
	for i, rec := range records[1:] {
		b, err := unmarshalBalance(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		balances = append(balances, b)
	}
	return balances, nil
}

// WriteBalances writes balances.csv.
func WriteBalances(w io.Writer, balances []*fiscal.Balance) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "account_id", "period", "opening",
		"debit_total", "credit_total", "closing", "last_updated_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, b := range balances {
		if err := cw.Write(marshalBalance(b)); err != nil {
			return fmt.Errorf("writing balance %s %s: %w", b.AccountID, b.Period, err)
		}
	}
	return cw.Error()
}

func marshalBalance(b *fiscal.Balance) []string {
	row := make([]string, balNumFields)
	row[balColID] = b.ID
	row[balColAccount] = b.AccountID
	row[balColPeriod] = b.Period.String()
	row[balColOpening] = b.Opening.StringFixed(2)
	row[balColDebit] = b.DebitTotal.StringFixed(2)
	row[balColCredit] = b.CreditTotal.StringFixed(2)
	row[balColClosing] = b.Closing.StringFixed(2)
	row[balColUAt] = fmtTime(b.LastUpdatedAt)
	return row
}

func unmarshalBalance(rec []string) (*fiscal.Balance, error) {
	p, err := fiscal.Parse(rec[balColPeriod])
	if err != nil {
		return nil, fmt.Errorf("parsing period %q: %w", rec[balColPeriod], err)
	}
	opening, err := decimal.NewFromString(rec[balColOpening])
	if err != nil {
		return nil, fmt.Errorf("parsing opening %q: %w", rec[balColOpening], err)
	}
	debit, err := decimal.NewFromString(rec[balColDebit])
	if err != nil {
		return nil, fmt.Errorf("parsing debit_total %q: %w", rec[balColDebit], err)
	}
	credit, err := decimal.NewFromString(rec[balColCredit])
	if err != nil {
		return nil, fmt.Errorf("parsing credit_total %q: %w", rec[balColCredit], err)
	}
	closing, err := decimal.NewFromString(rec[balColClosing])
	if err != nil {
		return nil, fmt.Errorf("parsing closing %q: %w", rec[balColClosing], err)
	}
	updatedAt, err := parseTime(rec[balColUAt])
	if err != nil {
		return nil, err
	}

	return &fiscal.Balance{
		ID:            rec[balColID],
		AccountID:     rec[balColAccount],
		Period:        p,
		Opening:       opening,
		DebitTotal:    debit,
		CreditTotal:   credit,
		Closing:       closing,
		LastUpdatedAt: updatedAt,
	}, nil
}
