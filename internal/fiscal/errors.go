package fiscal

import "errors"

var (
	ErrInvalidPeriod     = errors.New("invalid fiscal period")
	ErrNotOpen           = errors.New("fiscal period is not open")
	ErrNotClosed         = errors.New("fiscal period is not closed")
	ErrLocked            = errors.New("fiscal period is locked")
	ErrPreviousOpen      = errors.New("previous fiscal period is still open")
	ErrReasonTooShort    = errors.New("reopen reason must be at least 10 characters")
	ErrPeriodNotFound    = errors.New("fiscal period not found")
	ErrBalanceNotFound   = errors.New("account balance not found")
	ErrNegativeTotal     = errors.New("debit and credit totals cannot be negative")
	ErrUnknownNormalSide = errors.New("unknown normal balance side")
)
