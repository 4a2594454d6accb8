package asset

import "errors"

var (
	ErrEmptyName          = errors.New("asset name is required")
	ErrInvalidCost        = errors.New("acquisition cost must be positive")
	ErrInvalidSalvage     = errors.New("salvage value must be between zero and cost")
	ErrInvalidLife        = errors.New("useful life must be at least one month")
	ErrUnknownMethod      = errors.New("unknown depreciation method")
	ErrNotDraft           = errors.New("asset is not draft")
	ErrNotActive          = errors.New("asset is not active")
	ErrNotSuspended       = errors.New("asset is not suspended")
	ErrNotStarted         = errors.New("depreciation start date has not passed")
	ErrPeriodBooked       = errors.New("period already depreciated")
	ErrDisposed           = errors.New("asset is already disposed or written off")
	ErrNegativeAmount     = errors.New("depreciation amount cannot be negative")
	ErrMissingUnits       = errors.New("units-of-production requires period and total units")
	ErrAssetNotFound      = errors.New("fixed asset not found")
	ErrCategoryNotFound   = errors.New("asset category not found")
	ErrRunNotFound        = errors.New("depreciation run not found")
	ErrRunPeriodNotOpen   = errors.New("depreciation run requires an open fiscal period")
	ErrEmptyDisposeReason = errors.New("disposal reason is required")
)
