package banking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// MatchStatus tracks whether a bank transaction has been tied to a journal
// line during reconciliation.
type MatchStatus string

const (
	Unmatched MatchStatus = "unmatched"
	Matched   MatchStatus = "matched"
	Excluded  MatchStatus = "excluded"
)

// Transaction is one line of a bank statement. Amount is signed from the
// bank's perspective: deposits positive, withdrawals negative.
type Transaction struct {
	ID            string
	BankAccountID string
	StatementID   string
	Date          time.Time
	Amount        decimal.Decimal
	Reference     string
	Description   string
	Fingerprint   string
	MatchStatus   MatchStatus
	MatchedLineID string // journal line, one-to-one
	MatchedAt     time.Time
}

// NewTransaction builds an unmatched transaction and computes its
// fingerprint from the identifying fields.
func NewTransaction(bankAccountID, statementID string, date time.Time, amount decimal.Decimal, reference, description string) *Transaction {
	return &Transaction{
		ID:            uuid.NewString(),
		BankAccountID: bankAccountID,
		StatementID:   statementID,
		Date:          date,
		Amount:        amount,
		Reference:     reference,
		Description:   description,
		Fingerprint:   Fingerprint(bankAccountID, date, amount, reference),
		MatchStatus:   Unmatched,
	}
}

// RehydrateTransaction rebuilds a transaction from persisted state.
func RehydrateTransaction(t Transaction) *Transaction {
	return &t
}

// Match links the transaction to exactly one journal line.
func (t *Transaction) Match(lineID string) error {
	if lineID == "" {
		return ErrEmptyLineID
	}
	switch t.MatchStatus {
	case Matched:
		return fmt.Errorf("%w: already linked to line %s", ErrAlreadyMatched, t.MatchedLineID)
	case Excluded:
		return fmt.Errorf("%w: include it first", ErrExcluded)
	}
	t.MatchStatus = Matched
	t.MatchedLineID = lineID
	t.MatchedAt = time.Now().UTC()
	return nil
}

// Unmatch breaks the link to a journal line.
func (t *Transaction) Unmatch() error {
	if t.MatchStatus != Matched {
		return fmt.Errorf("%w: %s", ErrNotMatched, t.MatchStatus)
	}
	t.MatchStatus = Unmatched
	t.MatchedLineID = ""
	t.MatchedAt = time.Time{}
	return nil
}

// Exclude removes the transaction from matching consideration. Matched
// transactions must be unmatched first.
func (t *Transaction) Exclude() error {
	if t.MatchStatus == Matched {
		return fmt.Errorf("%w: unmatch before excluding", ErrAlreadyMatched)
	}
	t.MatchStatus = Excluded
	return nil
}

// Include returns an excluded transaction to the unmatched pool.
func (t *Transaction) Include() error {
	if t.MatchStatus != Excluded {
		return fmt.Errorf("%w: %s", ErrNotExcluded, t.MatchStatus)
	}
	t.MatchStatus = Unmatched
	return nil
}

// Statement is an imported bank statement header; its transactions are
// stored and queried through the transaction repository.
type Statement struct {
	ID               string
	BankAccountID    string
	Period           fiscal.Period
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TransactionCount int
	ImportedAt       time.Time
	ImportedBy       string
}

// NewStatement builds a statement header for a period.
func NewStatement(bankAccountID string, p fiscal.Period, opening, closing decimal.Decimal, importedBy string) *Statement {
	return &Statement{
		ID:             uuid.NewString(),
		BankAccountID:  bankAccountID,
		Period:         p,
		OpeningBalance: opening,
		ClosingBalance: closing,
		ImportedAt:     time.Now().UTC(),
		ImportedBy:     importedBy,
	}
}

// AddTotals accumulates a transaction into the statement totals.
func (s *Statement) AddTotals(amount decimal.Decimal) {
	if amount.IsNegative() {
		s.TotalWithdrawals = s.TotalWithdrawals.Add(amount.Abs())
	} else {
		s.TotalDeposits = s.TotalDeposits.Add(amount)
	}
	s.TransactionCount++
}
