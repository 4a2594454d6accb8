package banking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// ReconStatus is the reconciliation lifecycle state.
type ReconStatus string

const (
	ReconDraft      ReconStatus = "draft"
	ReconInProgress ReconStatus = "in-progress"
	ReconCompleted  ReconStatus = "completed"
	ReconApproved   ReconStatus = "approved"
)

// ItemType classifies a reconciling item and fixes its sign rule.
type ItemType string

const (
	OutstandingCheck ItemType = "outstanding-check"
	DepositInTransit ItemType = "deposit-in-transit"
	BankFee          ItemType = "bank-fee"
	BankInterest     ItemType = "bank-interest"
	NSF              ItemType = "nsf"
	Adjustment       ItemType = "adjustment"
)

// balanceEpsilon is the completion tolerance: the adjusted balances must
// differ by strictly less than one cent.
var balanceEpsilon = decimal.RequireFromString("0.01")

// Item is a reconciling item explaining part of the bank/book difference.
// Amounts are positive except for Adjustment, which carries its own sign.
type Item struct {
	ID          string
	Type        ItemType
	Description string
	Amount      decimal.Decimal
	Voided      bool
}

// Void removes the item from balance calculations while keeping its record.
func (i *Item) Void() error {
	if i.Voided {
		return ErrItemVoided
	}
	i.Voided = true
	return nil
}

// Reconciliation proves that a bank account's statement balance and the
// ledger's book balance agree for a period, after reconciling items.
type Reconciliation struct {
	ID               string
	BankAccountID    string
	Period           fiscal.Period
	Status           ReconStatus
	StatementBalance decimal.Decimal
	BookBalance      decimal.Decimal
	Items            []Item
	StartedAt        time.Time
	CompletedBy      string
	CompletedAt      time.Time
	ApprovedBy       string
	ApprovedAt       time.Time
}

// NewReconciliation opens a draft reconciliation for an account and period.
func NewReconciliation(bankAccountID string, p fiscal.Period, statementBalance, bookBalance decimal.Decimal) *Reconciliation {
	return &Reconciliation{
		ID:               uuid.NewString(),
		BankAccountID:    bankAccountID,
		Period:           p,
		Status:           ReconDraft,
		StatementBalance: statementBalance,
		BookBalance:      bookBalance,
	}
}

// RehydrateReconciliation rebuilds a reconciliation from persisted state.
func RehydrateReconciliation(r Reconciliation) *Reconciliation {
	return &r
}

// Start moves the reconciliation into active matching.
func (r *Reconciliation) Start() error {
	if r.Status != ReconDraft {
		return fmt.Errorf("%w: %s", ErrNotDraft, r.Status)
	}
	r.Status = ReconInProgress
	r.StartedAt = time.Now().UTC()
	return nil
}

// AddItem records a reconciling item. Rejected once completed.
func (r *Reconciliation) AddItem(t ItemType, description string, amount decimal.Decimal) (*Item, error) {
	switch t {
	case OutstandingCheck, DepositInTransit, BankFee, BankInterest, NSF, Adjustment:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, t)
	}
	if r.Status != ReconDraft && r.Status != ReconInProgress {
		return nil, fmt.Errorf("%w: %s", ErrNotInProgress, r.Status)
	}
	item := Item{
		ID:          uuid.NewString(),
		Type:        t,
		Description: description,
		Amount:      amount,
	}
	r.Items = append(r.Items, item)
	return &r.Items[len(r.Items)-1], nil
}

// AdjustedBalances applies the sign rules of every non-voided item.
// Timing differences (checks not yet cleared, deposits in transit) adjust
// the bank side; unrecorded bank activity (fees, interest, NSF returns,
// adjustments) adjusts the book side.
func (r *Reconciliation) AdjustedBalances() (bank, book decimal.Decimal) {
	bank = r.StatementBalance
	book = r.BookBalance
	for _, item := range r.Items {
		if item.Voided {
			continue
		}
		switch item.Type {
		case OutstandingCheck:
			bank = bank.Sub(item.Amount)
		case DepositInTransit:
			bank = bank.Add(item.Amount)
		case BankFee, NSF:
			book = book.Sub(item.Amount)
		case BankInterest:
			book = book.Add(item.Amount)
		case Adjustment:
			book = book.Add(item.Amount)
		}
	}
	return bank, book
}

// Difference returns adjusted bank minus adjusted book.
func (r *Reconciliation) Difference() decimal.Decimal {
	bank, book := r.AdjustedBalances()
	return bank.Sub(book)
}

// IsBalanced reports whether the adjusted balances agree within a cent.
func (r *Reconciliation) IsBalanced() bool {
	return r.Difference().Abs().LessThan(balanceEpsilon)
}

// Complete closes the reconciliation. Fails hard when out of balance; the
// difference is never silently written off.
func (r *Reconciliation) Complete(userID string) error {
	if r.Status != ReconInProgress {
		return fmt.Errorf("%w: %s", ErrNotInProgress, r.Status)
	}
	if !r.IsBalanced() {
		return fmt.Errorf("%w: difference %s", ErrNotBalanced, r.Difference().StringFixed(2))
	}
	r.Status = ReconCompleted
	r.CompletedBy = userID
	r.CompletedAt = time.Now().UTC()
	return nil
}

// Approve signs off a completed reconciliation.
func (r *Reconciliation) Approve(userID string) error {
	if r.Status != ReconCompleted {
		return fmt.Errorf("%w: %s", ErrNotCompleted, r.Status)
	}
	r.Status = ReconApproved
	r.ApprovedBy = userID
	r.ApprovedAt = time.Now().UTC()
	return nil
}
