package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/balancebook-dev/balancebook/internal/coa"
)

const (
	acctNumFields = 12
	acctColID     = 0
	acctColCode   = 1
	acctColName   = 2
	acctColDesc   = 3
	acctColParent = 4
	acctColLevel  = 5
	acctColDetail = 6
	acctColSystem = 7
	acctColStatus = 8
	acctColHasTxn = 9
	acctColCAt    = 10
	acctColUAt    = 11
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]*coa.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = acctNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var accounts []*coa.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []*coa.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "code", "name", "description", "parent_id", "level",
		"is_detail", "is_system", "status", "has_transactions",
		"created_at", "updated_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a *coa.Account) []string {
	row := make([]string, acctNumFields)
	row[acctColID] = a.ID
	row[acctColCode] = a.Code.String()
	row[acctColName] = a.Name
	row[acctColDesc] = a.Description
	row[acctColParent] = a.ParentID
	row[acctColLevel] = strconv.Itoa(a.Level)
	row[acctColDetail] = strconv.FormatBool(a.IsDetail)
	row[acctColSystem] = strconv.FormatBool(a.IsSystem)
	row[acctColStatus] = string(a.Status)
	row[acctColHasTxn] = strconv.FormatBool(a.HasTransactions)
	row[acctColCAt] = fmtTime(a.CreatedAt)
	row[acctColUAt] = fmtTime(a.UpdatedAt)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (*coa.Account, error) {
	if len(record) != acctNumFields {
		return nil, fmt.Errorf("expected %d fields, got %d", acctNumFields, len(record))
	}

	code, err := coa.ParseCode(record[acctColCode])
	if err != nil {
		return nil, fmt.Errorf("parsing code %q: %w", record[acctColCode], err)
	}
	level, err := strconv.Atoi(record[acctColLevel])
	if err != nil {
		return nil, fmt.Errorf("parsing level %q: %w", record[acctColLevel], err)
	}
	detail, err := strconv.ParseBool(record[acctColDetail])
	if err != nil {
		return nil, fmt.Errorf("parsing is_detail %q: %w", record[acctColDetail], err)
	}
	system, err := strconv.ParseBool(record[acctColSystem])
	if err != nil {
		return nil, fmt.Errorf("parsing is_system %q: %w", record[acctColSystem], err)
	}
	hasTxn, err := strconv.ParseBool(record[acctColHasTxn])
	if err != nil {
		return nil, fmt.Errorf("parsing has_transactions %q: %w", record[acctColHasTxn], err)
	}
	createdAt, err := parseTime(record[acctColCAt])
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(record[acctColUAt])
	if err != nil {
		return nil, err
	}

	return coa.Rehydrate(coa.Account{
		ID:              record[acctColID],
		Code:            code,
		Name:            record[acctColName],
		Description:     record[acctColDesc],
		ParentID:        record[acctColParent],
		Level:           level,
		IsDetail:        detail,
		IsSystem:        system,
		Status:          coa.Status(record[acctColStatus]),
		HasTransactions: hasTxn,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}), nil
}
