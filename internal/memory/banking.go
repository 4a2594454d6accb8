package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/banking"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// BankAccountRepo is an in-memory banking.AccountRepository.
type BankAccountRepo struct {
	mu   sync.RWMutex
	byID map[string]banking.Account
}

// NewBankAccountRepo creates an empty bank account repository.
func NewBankAccountRepo() *BankAccountRepo {
	return &BankAccountRepo{byID: make(map[string]banking.Account)}
}

func (r *BankAccountRepo) FindByID(id string) (*banking.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", banking.ErrAccountNotFound, id)
	}
	return banking.RehydrateAccount(a), nil
}

func (r *BankAccountRepo) FindAll() ([]*banking.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*banking.Account
	for _, a := range r.byID {
		out = append(out, banking.RehydrateAccount(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *BankAccountRepo) Save(a *banking.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = *a
	return nil
}

// StatementRepo is an in-memory banking.StatementRepository.
type StatementRepo struct {
	mu   sync.RWMutex
	byID map[string]banking.Statement
}

// NewStatementRepo creates an empty statement repository.
func NewStatementRepo() *StatementRepo {
	return &StatementRepo{byID: make(map[string]banking.Statement)}
}

func (r *StatementRepo) FindByID(id string) (*banking.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", banking.ErrStatementNotFound, id)
	}
	copied := s
	return &copied, nil
}

func (r *StatementRepo) FindByAccountAndPeriod(bankAccountID string, p fiscal.Period) (*banking.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.byID {
		if s.BankAccountID == bankAccountID && s.Period == p {
			copied := s
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s period %s", banking.ErrStatementNotFound, bankAccountID, p)
}

func (r *StatementRepo) FindAll() ([]*banking.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*banking.Statement
	for _, s := range r.byID {
		copied := s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BankAccountID != out[j].BankAccountID {
			return out[i].BankAccountID < out[j].BankAccountID
		}
		return out[i].Period.Before(out[j].Period)
	})
	return out, nil
}

func (r *StatementRepo) Save(s *banking.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = *s
	return nil
}

// BankTransactionRepo is an in-memory banking.TransactionRepository with a
// fingerprint index for duplicate detection.
type BankTransactionRepo struct {
	mu            sync.RWMutex
	byID          map[string]banking.Transaction
	byFingerprint map[string]string // fingerprint -> transaction id
}

// NewBankTransactionRepo creates an empty bank transaction repository.
func NewBankTransactionRepo() *BankTransactionRepo {
	return &BankTransactionRepo{
		byID:          make(map[string]banking.Transaction),
		byFingerprint: make(map[string]string),
	}
}

func (r *BankTransactionRepo) FindByID(id string) (*banking.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", banking.ErrTransactionNotFound, id)
	}
	return banking.RehydrateTransaction(t), nil
}

func (r *BankTransactionRepo) FindByStatement(statementID string) ([]*banking.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*banking.Transaction
	for _, t := range r.byID {
		if t.StatementID == statementID {
			out = append(out, banking.RehydrateTransaction(t))
		}
	}
	sortTransactions(out)
	return out, nil
}

func (r *BankTransactionRepo) FindUnmatched(bankAccountID string) ([]*banking.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*banking.Transaction
	for _, t := range r.byID {
		if t.BankAccountID == bankAccountID && t.MatchStatus == banking.Unmatched {
			out = append(out, banking.RehydrateTransaction(t))
		}
	}
	sortTransactions(out)
	return out, nil
}

func (r *BankTransactionRepo) FindAll() ([]*banking.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*banking.Transaction
	for _, t := range r.byID {
		out = append(out, banking.RehydrateTransaction(t))
	}
	sortTransactions(out)
	return out, nil
}

func (r *BankTransactionRepo) FingerprintExists(fingerprint string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byFingerprint[fingerprint]
	return ok, nil
}

// Save rejects a new transaction whose fingerprint is already indexed,
// which makes statement re-imports idempotent.
func (r *BankTransactionRepo) Save(t *banking.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existingID, ok := r.byFingerprint[t.Fingerprint]; ok && existingID != t.ID {
		return fmt.Errorf("%w: %s", banking.ErrDuplicateTransaction, t.Fingerprint)
	}
	r.byID[t.ID] = *t
	r.byFingerprint[t.Fingerprint] = t.ID
	return nil
}

// ReconciliationRepo is an in-memory banking.ReconciliationRepository.
type ReconciliationRepo struct {
	mu         sync.RWMutex
	byID       map[string]banking.Reconciliation
	statements *StatementRepo
}

// NewReconciliationRepo creates an empty reconciliation repository. The
// statement repository backs the needs-reconciliation query.
func NewReconciliationRepo(statements *StatementRepo) *ReconciliationRepo {
	return &ReconciliationRepo{
		byID:       make(map[string]banking.Reconciliation),
		statements: statements,
	}
}

// cloneRecon copies a reconciliation along with its items, so callers
// never share the stored Items backing array.
func cloneRecon(rec banking.Reconciliation) banking.Reconciliation {
	rec.Items = append([]banking.Item(nil), rec.Items...)
	return rec
}

func (r *ReconciliationRepo) FindByID(id string) (*banking.Reconciliation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", banking.ErrReconNotFound, id)
	}
	return banking.RehydrateReconciliation(cloneRecon(rec)), nil
}

func (r *ReconciliationRepo) FindByAccountAndPeriod(bankAccountID string, p fiscal.Period) (*banking.Reconciliation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.byID {
		if rec.BankAccountID == bankAccountID && rec.Period == p {
			return banking.RehydrateReconciliation(cloneRecon(rec)), nil
		}
	}
	return nil, fmt.Errorf("%w: account %s period %s", banking.ErrReconNotFound, bankAccountID, p)
}

func (r *ReconciliationRepo) AccountsNeedingReconciliation(p fiscal.Period) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	done := make(map[string]bool)
	for _, rec := range r.byID {
		if rec.Period == p && (rec.Status == banking.ReconCompleted || rec.Status == banking.ReconApproved) {
			done[rec.BankAccountID] = true
		}
	}

	r.statements.mu.RLock()
	defer r.statements.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, s := range r.statements.byID {
		if s.Period == p && !done[s.BankAccountID] && !seen[s.BankAccountID] {
			seen[s.BankAccountID] = true
			out = append(out, s.BankAccountID)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *ReconciliationRepo) Save(rec *banking.Reconciliation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = cloneRecon(*rec)
	return nil
}

func sortTransactions(txs []*banking.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].ID < txs[j].ID
	})
}
