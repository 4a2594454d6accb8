package journal

import "errors"

var (
	ErrNotDraft         = errors.New("journal entry is not draft")
	ErrNotPosted        = errors.New("journal entry is not posted")
	ErrPeriodNotOpen    = errors.New("fiscal period does not accept postings")
	ErrVoidReason       = errors.New("void reason must be at least 3 characters")
	ErrEntryNotFound    = errors.New("journal entry not found")
	ErrInvalidNumber    = errors.New("invalid entry number")
	ErrEmptyDescription = errors.New("entry description is required")
)
