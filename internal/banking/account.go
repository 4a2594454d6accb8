package banking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balancebook-dev/balancebook/internal/currency"
)

// AccountStatus is the lifecycle state of a bank account record.
type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountClosed AccountStatus = "closed"
)

// Account links a real-world bank account to a GL account in the chart.
type Account struct {
	ID           string
	Name         string
	BankName     string
	LastFour     string
	GLAccountID  string
	Currency     currency.Code
	Status       AccountStatus
	LastImportAt time.Time
	CreatedAt    time.Time
}

// NewAccount creates an active bank account linked to a GL account.
func NewAccount(name, bankName, lastFour, glAccountID string, cur currency.Code) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyAccountName
	}
	if glAccountID == "" {
		return nil, ErrNoGLAccount
	}
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	return &Account{
		ID:          uuid.NewString(),
		Name:        name,
		BankName:    bankName,
		LastFour:    lastFour,
		GLAccountID: glAccountID,
		Currency:    cur,
		Status:      AccountActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// RehydrateAccount rebuilds a bank account from persisted state.
func RehydrateAccount(a Account) *Account {
	return &a
}

// MarkImported records that a statement import touched this account.
func (a *Account) MarkImported(at time.Time) {
	a.LastImportAt = at.UTC()
}

// NeedsReconciliation reports whether the account has no reconciliation
// yet for the given statement period. The caller passes what it found in
// the reconciliation repository.
func (a *Account) NeedsReconciliation(hasRecon bool) bool {
	return a.Status == AccountActive && !hasRecon
}
