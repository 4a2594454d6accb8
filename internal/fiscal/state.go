package fiscal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a fiscal period.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusLocked Status = "locked"
)

// State is the fiscal period aggregate: the period identity plus its
// open/closed/locked lifecycle. The aggregate has no knowledge of sibling
// periods; the caller passes the adjacent period's status into Close.
type State struct {
	ID           string
	Period       Period
	Status       Status
	ClosedBy     string
	ClosedAt     time.Time
	ReopenedBy   string
	ReopenedAt   time.Time
	ReopenReason string
	LockedBy     string
	LockedAt     time.Time
}

// Open creates a new period in the Open state.
func Open(p Period) *State {
	return &State{
		ID:     uuid.NewString(),
		Period: p,
		Status: StatusOpen,
	}
}

// RehydrateState rebuilds a period from persisted state without validation.
func RehydrateState(s State) *State {
	return &s
}

// CanPostEntries reports whether journal entries may post into the period.
func (s *State) CanPostEntries() bool {
	return s.Status == StatusOpen
}

// Close transitions Open -> Closed. Periods close in calendar order:
// previousStatus is the status of the immediately preceding period, which
// must already be Closed or Locked. Pass StatusClosed for the very first
// period a ledger tracks.
func (s *State) Close(userID string, previousStatus Status) error {
	if s.Status == StatusLocked {
		return fmt.Errorf("%w: %s", ErrLocked, s.Period)
	}
	if s.Status != StatusOpen {
		return fmt.Errorf("%w: %s is %s", ErrNotOpen, s.Period, s.Status)
	}
	switch previousStatus {
	case StatusClosed, StatusLocked:
	default:
		return fmt.Errorf("%w: close %s first", ErrPreviousOpen, mustPrevious(s.Period))
	}
	s.Status = StatusClosed
	s.ClosedBy = userID
	s.ClosedAt = time.Now().UTC()
	return nil
}

// Reopen transitions Closed -> Open. Locked periods never reopen. The
// reason is mandatory and becomes part of the period's record.
func (s *State) Reopen(userID, reason string) error {
	if s.Status == StatusLocked {
		return fmt.Errorf("%w: %s", ErrLocked, s.Period)
	}
	if s.Status != StatusClosed {
		return fmt.Errorf("%w: %s is %s", ErrNotClosed, s.Period, s.Status)
	}
	if len(strings.TrimSpace(reason)) < 10 {
		return ErrReasonTooShort
	}
	s.Status = StatusOpen
	s.ReopenedBy = userID
	s.ReopenedAt = time.Now().UTC()
	s.ReopenReason = strings.TrimSpace(reason)
	return nil
}

// Lock transitions Closed -> Locked. Locked is terminal.
func (s *State) Lock(userID string) error {
	if s.Status == StatusLocked {
		return fmt.Errorf("%w: %s", ErrLocked, s.Period)
	}
	if s.Status != StatusClosed {
		return fmt.Errorf("%w: %s is %s", ErrNotClosed, s.Period, s.Status)
	}
	s.Status = StatusLocked
	s.LockedBy = userID
	s.LockedAt = time.Now().UTC()
	return nil
}

// mustPrevious is only called for error text on periods that passed
// validation, so the lower bound cannot be hit via Close.
func mustPrevious(p Period) Period {
	prev, ok := p.Previous()
	if !ok {
		return p
	}
	return prev
}
