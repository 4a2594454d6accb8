package fiscal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/coa"
)

// Balance is the per-account, per-period rollup of posted journal lines.
// Closing is always derived: opening + debit - credit for debit-normal
// accounts, opening + credit - debit for credit-normal accounts.
type Balance struct {
	ID            string
	AccountID     string
	Period        Period
	Opening       decimal.Decimal
	DebitTotal    decimal.Decimal
	CreditTotal   decimal.Decimal
	Closing       decimal.Decimal
	LastUpdatedAt time.Time
}

// NewBalance creates an empty rollup for an account and period.
func NewBalance(id, accountID string, p Period) *Balance {
	return &Balance{
		ID:        id,
		AccountID: accountID,
		Period:    p,
	}
}

// UpdateFromTransactions replaces the debit/credit totals with fresh sums
// of posted lines and recomputes the closing balance. Recomputing with the
// same inputs yields the same closing balance.
func (b *Balance) UpdateFromTransactions(debitTotal, creditTotal decimal.Decimal, normal coa.NormalBalance) error {
	if debitTotal.IsNegative() || creditTotal.IsNegative() {
		return ErrNegativeTotal
	}
	b.DebitTotal = debitTotal
	b.CreditTotal = creditTotal
	return b.recompute(normal)
}

// SetOpeningBalance propagates a prior period's closing balance as this
// period's opening balance and recomputes closing. Idempotent.
func (b *Balance) SetOpeningBalance(opening decimal.Decimal, normal coa.NormalBalance) error {
	b.Opening = opening
	return b.recompute(normal)
}

func (b *Balance) recompute(normal coa.NormalBalance) error {
	switch normal {
	case coa.NormalDebit:
		b.Closing = b.Opening.Add(b.DebitTotal).Sub(b.CreditTotal)
	case coa.NormalCredit:
		b.Closing = b.Opening.Add(b.CreditTotal).Sub(b.DebitTotal)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNormalSide, normal)
	}
	b.LastUpdatedAt = time.Now().UTC()
	return nil
}
