package banking

import "github.com/balancebook-dev/balancebook/internal/fiscal"

// AccountRepository is the persistence port for bank accounts.
type AccountRepository interface {
	FindByID(id string) (*Account, error)
	FindAll() ([]*Account, error)
	Save(a *Account) error
}

// StatementRepository is the persistence port for statement headers.
type StatementRepository interface {
	FindByID(id string) (*Statement, error)
	FindByAccountAndPeriod(bankAccountID string, p fiscal.Period) (*Statement, error)
	Save(s *Statement) error
}

// TransactionRepository is the persistence port for statement lines.
// FingerprintExists backs duplicate-import rejection.
type TransactionRepository interface {
	FindByID(id string) (*Transaction, error)
	FindByStatement(statementID string) ([]*Transaction, error)
	FindUnmatched(bankAccountID string) ([]*Transaction, error)
	FingerprintExists(fingerprint string) (bool, error)
	Save(t *Transaction) error
}

// ReconciliationRepository is the persistence port for reconciliations.
type ReconciliationRepository interface {
	FindByID(id string) (*Reconciliation, error)
	FindByAccountAndPeriod(bankAccountID string, p fiscal.Period) (*Reconciliation, error)
	// AccountsNeedingReconciliation lists bank account ids with a statement
	// but no completed reconciliation for the period.
	AccountsNeedingReconciliation(p fiscal.Period) ([]string, error)
	Save(r *Reconciliation) error
}
