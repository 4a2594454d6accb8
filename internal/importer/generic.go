package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// GenericParser parses the four-column interchange format
// date,description,amount,reference with ISO dates and signed amounts.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 4
	genericColDate    = 0
	genericColDesc    = 1
	genericColAmount  = 2
	genericColRef     = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns Rows.
func (p *GenericParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (Row, error) {
	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	return Row{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
		Reference:   rec[genericColRef],
	}, nil
}
