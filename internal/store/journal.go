package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/journal"
)

// Journal entries flatten to one CSV row per line, with the entry-level
// fields repeated. Rows for one entry are contiguous and keyed by entry_id.
const (
	jrnNumFields    = 25
	jrnColEntryID   = 0
	jrnColNumber    = 1
	jrnColDate      = 2
	jrnColType      = 3
	jrnColStatus    = 4
	jrnColDesc      = 5
	jrnColSourceSvc = 6
	jrnColSourceRef = 7
	jrnColCreatedBy = 8
	jrnColCreatedAt = 9
	jrnColPostedBy  = 10
	jrnColPostedAt  = 11
	jrnColVoidedBy  = 12
	jrnColVoidedAt  = 13
	jrnColVoidWhy   = 14
	jrnColAccount   = 15
	jrnColDirection = 16
	jrnColAmount    = 17
	jrnColLineDesc  = 18
	jrnColSalesID   = 19
	jrnColWarehouse = 20
	jrnColChannel   = 21
	jrnColCustomer  = 22
	jrnColVendor    = 23
	jrnColProduct   = 24
)

var jrnHeader = []string{
	"entry_id", "number", "date", "type", "status", "description",
	"source_service", "source_reference_id",
	"created_by", "created_at", "posted_by", "posted_at",
	"voided_by", "voided_at", "void_reason",
	"account_id", "direction", "amount", "line_description",
	"sales_person_id", "warehouse_id", "channel", "customer_id", "vendor_id",
	"product_id",
}

// ReadEntries reads journal.csv and regroups rows into entries.
func ReadEntries(r io.Reader) ([]*journal.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = jrnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []*journal.Entry
	var current *journal.Entry
	for i, rec := range records[1:] {
		if current == nil || current.ID != rec[jrnColEntryID] {
			e, err := unmarshalEntryHeader(rec)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
			current = e
			entries = append(entries, current)
		}
		line, err := unmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		current.Lines = append(current.Lines, line)
	}
	return entries, nil
}

// WriteEntries writes journal.csv.
func WriteEntries(w io.Writer, entries []*journal.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(jrnHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		for _, line := range e.Lines {
			if err := cw.Write(marshalEntryLine(e, line)); err != nil {
				return fmt.Errorf("writing entry %s: %w", e.Number, err)
			}
		}
	}
	return cw.Error()
}

func marshalEntryLine(e *journal.Entry, line journal.Line) []string {
	row := make([]string, jrnNumFields)
	row[jrnColEntryID] = e.ID
	row[jrnColNumber] = e.Number
	row[jrnColDate] = fmtDate(e.Date)
	row[jrnColType] = string(e.Type)
	row[jrnColStatus] = string(e.Status)
	row[jrnColDesc] = e.Description
	row[jrnColSourceSvc] = e.SourceService
	row[jrnColSourceRef] = e.SourceReferenceID
	row[jrnColCreatedBy] = e.CreatedBy
	row[jrnColCreatedAt] = fmtTime(e.CreatedAt)
	row[jrnColPostedBy] = e.PostedBy
	row[jrnColPostedAt] = fmtTime(e.PostedAt)
	row[jrnColVoidedBy] = e.VoidedBy
	row[jrnColVoidedAt] = fmtTime(e.VoidedAt)
	row[jrnColVoidWhy] = e.VoidReason
	row[jrnColAccount] = line.AccountID
	row[jrnColDirection] = string(line.Direction)
	row[jrnColAmount] = line.Amount.StringFixed(2)
	row[jrnColLineDesc] = line.Description
	row[jrnColSalesID] = line.SalesPersonID
	row[jrnColWarehouse] = line.WarehouseID
	row[jrnColChannel] = line.Channel
	row[jrnColCustomer] = line.CustomerID
	row[jrnColVendor] = line.VendorID
	row[jrnColProduct] = line.ProductID
	return row
}

func unmarshalEntryHeader(rec []string) (*journal.Entry, error) {
	date, err := parseDate(rec[jrnColDate])
	if err != nil {
		return nil, err
	}
	createdAt, err := parseTime(rec[jrnColCreatedAt])
	if err != nil {
		return nil, err
	}
	postedAt, err := parseTime(rec[jrnColPostedAt])
	if err != nil {
		return nil, err
	}
	voidedAt, err := parseTime(rec[jrnColVoidedAt])
	if err != nil {
		return nil, err
	}

	return journal.Rehydrate(journal.Entry{
		ID:                rec[jrnColEntryID],
		Number:            rec[jrnColNumber],
		Date:              date,
		Type:              journal.EntryType(rec[jrnColType]),
		Status:            journal.EntryStatus(rec[jrnColStatus]),
		Description:       rec[jrnColDesc],
		SourceService:     rec[jrnColSourceSvc],
		SourceReferenceID: rec[jrnColSourceRef],
		CreatedBy:         rec[jrnColCreatedBy],
		CreatedAt:         createdAt,
		PostedBy:          rec[jrnColPostedBy],
		PostedAt:          postedAt,
		VoidedBy:          rec[jrnColVoidedBy],
		VoidedAt:          voidedAt,
		VoidReason:        rec[jrnColVoidWhy],
	}), nil
}

func unmarshalLine(rec []string) (journal.Line, error) {
	amount, err := decimal.NewFromString(rec[jrnColAmount])
	if err != nil {
		return journal.Line{}, fmt.Errorf("parsing amount %q: %w", rec[jrnColAmount], err)
	}
	return journal.Line{
		AccountID:     rec[jrnColAccount],
		Direction:     journal.Direction(rec[jrnColDirection]),
		Amount:        amount,
		Description:   rec[jrnColLineDesc],
		SalesPersonID: rec[jrnColSalesID],
		WarehouseID:   rec[jrnColWarehouse],
		Channel:       rec[jrnColChannel],
		CustomerID:    rec[jrnColCustomer],
		VendorID:      rec[jrnColVendor],
		ProductID:     rec[jrnColProduct],
	}, nil
}
