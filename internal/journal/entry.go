package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// Direction is the side of a journal line. Amounts are always positive;
// the direction carries the sign.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// EntryType classifies how an entry originated.
type EntryType string

const (
	TypeManual    EntryType = "manual"
	TypeSystem    EntryType = "system"
	TypeRecurring EntryType = "recurring"
	TypeAdjusting EntryType = "adjusting"
	TypeClosing   EntryType = "closing"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft  EntryStatus = "draft"
	StatusPosted EntryStatus = "posted"
	StatusVoided EntryStatus = "voided"
)

// Line is one side of a double-entry. Dimension fields attribute the line
// to sales, warehouse, channel, customer, vendor, or product reporting axes.
type Line struct {
	AccountID   string
	Direction   Direction
	Amount      decimal.Decimal
	Description string

	SalesPersonID string
	WarehouseID   string
	Channel       string
	CustomerID    string
	VendorID      string
	ProductID     string
}

// PeriodGate answers whether a fiscal period currently accepts postings.
// *fiscal.State satisfies it.
type PeriodGate interface {
	CanPostEntries() bool
}

// Entry is the balanced-transaction aggregate root.
type Entry struct {
	ID          string
	Number      string
	Date        time.Time
	Description string
	Type        EntryType
	Status      EntryStatus
	Lines       []Line

	// SourceService and SourceReferenceID attribute system-generated
	// entries to the external event that produced them, keying idempotent
	// re-posting checks.
	SourceService     string
	SourceReferenceID string

	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	PostedBy   string
	PostedAt   time.Time
	VoidedBy   string
	VoidedAt   time.Time
	VoidReason string
}

// Params holds the input for creating a journal entry.
type Params struct {
	Number            string
	Date              time.Time
	Description       string
	Type              EntryType
	Lines             []Line
	SourceService     string
	SourceReferenceID string
	CreatedBy         string
}

// New validates the double-entry invariants and creates a Draft entry.
// Nothing is persisted until the caller saves through the repository port.
func New(p Params) (*Entry, error) {
	if strings.TrimSpace(p.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if errs := ValidateLines(p.Lines); len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	typ := p.Type
	if typ == "" {
		typ = TypeManual
	}
	now := time.Now().UTC()
	return &Entry{
		ID:                uuid.NewString(),
		Number:            p.Number,
		Date:              p.Date,
		Description:       strings.TrimSpace(p.Description),
		Type:              typ,
		Status:            StatusDraft,
		Lines:             append([]Line(nil), p.Lines...),
		SourceService:     p.SourceService,
		SourceReferenceID: p.SourceReferenceID,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Rehydrate rebuilds an entry from persisted state without validation.
func Rehydrate(e Entry) *Entry {
	return &e
}

// Period derives the fiscal period from the entry date. It is never
// stored; the date is the single source of truth.
func (e *Entry) Period() fiscal.Period {
	return fiscal.FromDate(e.Date)
}

// TotalDebits sums the debit lines.
func (e *Entry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		if l.Direction == Debit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit lines.
func (e *Entry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		if l.Direction == Credit {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// Post finalizes a Draft entry so it contributes to balances. The entry's
// period must be open; the caller supplies the period it resolved for the
// entry date. Invariants are re-checked so a mutated draft can never post
// unbalanced.
func (e *Entry) Post(userID string, period PeriodGate) error {
	if e.Status != StatusDraft {
		return fmt.Errorf("%w: %s is %s", ErrNotDraft, e.Number, e.Status)
	}
	if period == nil || !period.CanPostEntries() {
		return fmt.Errorf("%w: %s", ErrPeriodNotOpen, e.Period())
	}
	if errs := ValidateLines(e.Lines); len(errs) > 0 {
		return joinErrors(errs)
	}
	e.Status = StatusPosted
	e.PostedBy = userID
	e.PostedAt = time.Now().UTC()
	e.UpdatedAt = e.PostedAt
	return nil
}

// Void marks a Posted entry void. Lines are kept for the audit trail and
// stop contributing to balances; any compensating entry is the caller's
// own manual entry.
func (e *Entry) Void(userID, reason string) error {
	if e.Status != StatusPosted {
		return fmt.Errorf("%w: %s is %s", ErrNotPosted, e.Number, e.Status)
	}
	reason = strings.TrimSpace(reason)
	if len(reason) < 3 {
		return ErrVoidReason
	}
	e.Status = StatusVoided
	e.VoidedBy = userID
	e.VoidedAt = time.Now().UTC()
	e.VoidReason = reason
	e.UpdatedAt = e.VoidedAt
	return nil
}

// Update changes the header fields of a Draft entry.
func (e *Entry) Update(date time.Time, description string) error {
	if e.Status != StatusDraft {
		return fmt.Errorf("%w: %s is %s", ErrNotDraft, e.Number, e.Status)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	e.Date = date
	e.Description = description
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateLines replaces the lines of a Draft entry, revalidating the
// double-entry invariants first.
func (e *Entry) UpdateLines(lines []Line) error {
	if e.Status != StatusDraft {
		return fmt.Errorf("%w: %s is %s", ErrNotDraft, e.Number, e.Status)
	}
	if errs := ValidateLines(lines); len(errs) > 0 {
		return joinErrors(errs)
	}
	e.Lines = append([]Line(nil), lines...)
	e.UpdatedAt = time.Now().UTC()
	return nil
}
