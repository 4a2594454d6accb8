package store

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/banking"
)

const (
	btxNumFields   = 11
	btxColID       = 0
	btxColBankAcct = 1
	btxColStmt     = 2
	btxColDate     = 3
	btxColAmount   = 4
	btxColRef      = 5
	btxColDesc     = 6
	btxColFprint   = 7
	btxColMatch    = 8
	btxColLineID   = 9
	btxColMatchAt  = 10
)

// ReadBankTransactions reads bank-transactions.csv.
func ReadBankTransactions(r io.Reader) ([]*banking.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = btxNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []*banking.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalBankTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteBankTransactions writes bank-transactions.csv.
func WriteBankTransactions(w io.Writer, txns []*banking.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "bank_account_id", "statement_id", "date", "amount",
		"reference", "description", "fingerprint",
		"match_status", "matched_line_id", "matched_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, txn := range txns {
		if err := cw.Write(marshalBankTransaction(txn)); err != nil {
			return fmt.Errorf("writing transaction %s: %w", txn.Reference, err)
		}
	}
	return cw.Error()
}

func marshalBankTransaction(t *banking.Transaction) []string {
	row := make([]string, btxNumFields)
	row[btxColID] = t.ID
	row[btxColBankAcct] = t.BankAccountID
	row[btxColStmt] = t.StatementID
	row[btxColDate] = fmtDate(t.Date)
	row[btxColAmount] = t.Amount.StringFixed(2)
	row[btxColRef] = t.Reference
	row[btxColDesc] = t.Description
	row[btxColFprint] = t.Fingerprint
	row[btxColMatch] = string(t.MatchStatus)
	row[btxColLineID] = t.MatchedLineID
	row[btxColMatchAt] = fmtTime(t.MatchedAt)
	return row
}

func unmarshalBankTransaction(rec []string) (*banking.Transaction, error) {
	date, err := parseDate(rec[btxColDate])
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(rec[btxColAmount])
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", rec[btxColAmount], err)
	}
	matchedAt, err := parseTime(rec[btxColMatchAt])
	if err != nil {
		return nil, err
	}

	return banking.RehydrateTransaction(banking.Transaction{
		ID:            rec[btxColID],
		BankAccountID: rec[btxColBankAcct],
		StatementID:   rec[btxColStmt],
		Date:          date,
		Amount:        amount,
		Reference:     rec[btxColRef],
		Description:   rec[btxColDesc],
		Fingerprint:   rec[btxColFprint],
		MatchStatus:   banking.MatchStatus(rec[btxColMatch]),
		MatchedLineID: rec[btxColLineID],
		MatchedAt:     matchedAt,
	}), nil
}
