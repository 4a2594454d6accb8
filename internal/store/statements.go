package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/banking"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

const (
	stmNumFields      = 10
	stmColID          = 0
	stmColBankAcct    = 1
	stmColPeriod      = 2
	stmColOpening     = 3
	stmColClosing     = 4
	stmColDeposits    = 5
	stmColWithdrawals = 6
	stmColTxnCount    = 7
	stmColImportedAt  = 8
	stmColImportedBy  = 9
)

// ReadStatements reads statements.csv.
func ReadStatements(r io.Reader) ([]*banking.Statement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = stmNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statements CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var statements []*banking.Statement
	for i, rec := range records[1:] {
		s, err := unmarshalStatement(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		statements = append(statements, s)
	}
	return statements, nil
}

// WriteStatements writes statements.csv.
func WriteStatements(w io.Writer, statements []*banking.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "bank_account_id", "period", "opening_balance", "closing_balance",
		"total_deposits", "total_withdrawals", "transaction_count",
		"imported_at", "imported_by",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range statements {
		if err := cw.Write(marshalStatement(s)); err != nil {
			return fmt.Errorf("writing statement %s: %w", s.ID, err)
		}
	}
	return cw.Error()
}

func marshalStatement(s *banking.Statement) []string {
	row := make([]string, stmNumFields)
	row[stmColID] = s.ID
	row[stmColBankAcct] = s.BankAccountID
	row[stmColPeriod] = s.Period.String()
	row[stmColOpening] = s.OpeningBalance.StringFixed(2)
	row[stmColClosing] = s.ClosingBalance.StringFixed(2)
	row[stmColDeposits] = s.TotalDeposits.StringFixed(2)
	row[stmColWithdrawals] = s.TotalWithdrawals.StringFixed(2)
	row[stmColTxnCount] = strconv.Itoa(s.TransactionCount)
	row[stmColImportedAt] = fmtTime(s.ImportedAt)
	row[stmColImportedBy] = s.ImportedBy
	return row
}

func unmarshalStatement(rec []string) (*banking.Statement, error) {
	p, err := fiscal.Parse(rec[stmColPeriod])
	if err != nil {
		return nil, fmt.Errorf("parsing period %q: %w", rec[stmColPeriod], err)
	}
	opening, err := decimal.NewFromString(rec[stmColOpening])
	if err != nil {
		return nil, fmt.Errorf("parsing opening_balance %q: %w", rec[stmColOpening], err)
	}
	closing, err := decimal.NewFromString(rec[stmColClosing])
	if err != nil {
		return nil, fmt.Errorf("parsing closing_balance %q: %w", rec[stmColClosing], err)
	}
	deposits, err := decimal.NewFromString(rec[stmColDeposits])
	if err != nil {
		return nil, fmt.Errorf("parsing total_deposits %q: %w", rec[stmColDeposits], err)
	}
	withdrawals, err := decimal.NewFromString(rec[stmColWithdrawals])
	if err != nil {
		return nil, fmt.Errorf("parsing total_withdrawals %q: %w", rec[stmColWithdrawals], err)
	}
	count, err := strconv.Atoi(rec[stmColTxnCount])
	if err != nil {
		return nil, fmt.Errorf("parsing transaction_count %q: %w", rec[stmColTxnCount], err)
	}
	importedAt, err := parseTime(rec[stmColImportedAt])
	if err != nil {
		return nil, err
	}

	return &banking.Statement{
		ID:               rec[stmColID],
		BankAccountID:    rec[stmColBankAcct],
		Period:           p,
		OpeningBalance:   opening,
		ClosingBalance:   closing,
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		TransactionCount: count,
		ImportedAt:       importedAt,
		ImportedBy:       rec[stmColImportedBy],
	}, nil
}
