package coa

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an account.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// Account is a node in the chart of accounts. Classification fields are
// derived from Code and never stored independently.
type Account struct {
	ID              string
	Code            Code
	Name            string
	Description     string
	ParentID        string // empty = top-level
	Level           int
	IsDetail        bool // leaf accounts accept postings, summary accounts do not
	IsSystem        bool
	Status          Status
	HasTransactions bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccount validates input and creates an active account.
func NewAccount(code, name string, isDetail bool) (*Account, error) {
	c, err := ParseCode(code)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.NewString(),
		Code:      c,
		Name:      name,
		IsDetail:  isDetail,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rehydrate rebuilds an account from persisted state without validation.
func Rehydrate(a Account) *Account {
	return &a
}

// Type returns the account type derived from the code.
func (a *Account) Type() AccountType { return a.Code.Type() }

// NormalBalance returns the increasing side derived from the code.
func (a *Account) NormalBalance() NormalBalance { return a.Code.NormalBalance() }

// Category returns the reporting category derived from the code.
func (a *Account) Category() Category { return a.Code.Category() }

// CanPost reports whether journal lines may reference this account.
func (a *Account) CanPost() bool {
	return a.IsDetail && a.Status == StatusActive
}

// CanDelete reports whether the account may be removed from the chart.
func (a *Account) CanDelete() bool {
	return !a.IsSystem && !a.HasTransactions
}

// Rename changes the account name.
func (a *Account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	a.Name = name
	a.touch()
	return nil
}

// UpdateCode changes the account code, and with it the derived
// classification. Rejected for system accounts.
func (a *Account) UpdateCode(code string) error {
	if a.IsSystem {
		return fmt.Errorf("%w: cannot change code of %s", ErrSystemAccount, a.Code)
	}
	c, err := ParseCode(code)
	if err != nil {
		return err
	}
	a.Code = c
	a.touch()
	return nil
}

// SetParent records the parent account and this account's depth. Cycle
// detection over the full ancestor chain is the caller's responsibility;
// the aggregate only stores the id and level.
func (a *Account) SetParent(parentID string, parentLevel int) error {
	if parentID == a.ID {
		return ErrSelfParent
	}
	a.ParentID = parentID
	a.Level = parentLevel + 1
	a.touch()
	return nil
}

// Deactivate takes the account out of use. Rejected for system accounts.
func (a *Account) Deactivate() error {
	if a.IsSystem {
		return fmt.Errorf("%w: cannot deactivate %s", ErrSystemAccount, a.Code)
	}
	a.Status = StatusInactive
	a.touch()
	return nil
}

// Activate returns an inactive account to service.
func (a *Account) Activate() error {
	if a.Status == StatusArchived {
		return fmt.Errorf("%w: archived account %s", ErrNotActive, a.Code)
	}
	a.Status = StatusActive
	a.touch()
	return nil
}

// Archive permanently retires the account. Rejected for system accounts.
func (a *Account) Archive() error {
	if a.IsSystem {
		return fmt.Errorf("%w: cannot archive %s", ErrSystemAccount, a.Code)
	}
	a.Status = StatusArchived
	a.touch()
	return nil
}

func (a *Account) touch() {
	a.UpdatedAt = time.Now().UTC()
}
