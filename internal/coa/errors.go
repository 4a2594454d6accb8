package coa

import "errors"

var (
	ErrInvalidCode     = errors.New("invalid account code")
	ErrEmptyName       = errors.New("account name is required")
	ErrSystemAccount   = errors.New("system accounts cannot be modified")
	ErrHasTransactions = errors.New("account with transactions cannot be deleted")
	ErrNotActive       = errors.New("account is not active")
	ErrSelfParent      = errors.New("account cannot be its own parent")
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateCode   = errors.New("account code already exists")
)
