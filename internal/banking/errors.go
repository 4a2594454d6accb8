package banking

import "errors"

var (
	ErrEmptyAccountName     = errors.New("bank account name is required")
	ErrNoGLAccount          = errors.New("bank account must link to a GL account")
	ErrDuplicateTransaction = errors.New("duplicate bank transaction fingerprint")
	ErrAlreadyMatched       = errors.New("bank transaction is already matched")
	ErrNotMatched           = errors.New("bank transaction is not matched")
	ErrExcluded             = errors.New("bank transaction is excluded")
	ErrNotExcluded          = errors.New("bank transaction is not excluded")
	ErrEmptyLineID          = errors.New("journal line id is required for matching")
	ErrNotBalanced          = errors.New("adjusted bank and book balances do not agree")
	ErrNotDraft             = errors.New("reconciliation is not draft")
	ErrNotInProgress        = errors.New("reconciliation is not in progress")
	ErrNotCompleted         = errors.New("reconciliation is not completed")
	ErrItemVoided           = errors.New("reconciling item is already voided")
	ErrUnknownItemType      = errors.New("unknown reconciling item type")
	ErrAccountNotFound      = errors.New("bank account not found")
	ErrStatementNotFound    = errors.New("bank statement not found")
	ErrTransactionNotFound  = errors.New("bank transaction not found")
	ErrReconNotFound        = errors.New("bank reconciliation not found")
)
