package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/coa"
)

// AccountRepo is an in-memory coa.Repository.
type AccountRepo struct {
	mu       sync.RWMutex
	byID     map[string]coa.Account
	txnCount map[string]int // posted line count per account
}

// NewAccountRepo creates an empty account repository.
func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		byID:     make(map[string]coa.Account),
		txnCount: make(map[string]int),
	}
}

func (r *AccountRepo) FindByID(id string) (*coa.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", coa.ErrAccountNotFound, id)
	}
	return coa.Rehydrate(a), nil
}

func (r *AccountRepo) FindByCode(code coa.Code) (*coa.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.byID {
		if a.Code == code {
			return coa.Rehydrate(a), nil
		}
	}
	return nil, fmt.Errorf("%w: code %s", coa.ErrAccountNotFound, code)
}

func (r *AccountRepo) FindAll(f coa.Filter) ([]*coa.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*coa.Account
	for _, a := range r.byID {
		if f.Type != "" && a.Code.Type() != f.Type {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.DetailOnly && !a.IsDetail {
			continue
		}
		out = append(out, coa.Rehydrate(a))
	}
	sortAccounts(out)
	return out, nil
}

func (r *AccountRepo) FindByParentID(parentID string) ([]*coa.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*coa.Account
	for _, a := range r.byID {
		if a.ParentID == parentID {
			out = append(out, coa.Rehydrate(a))
		}
	}
	sortAccounts(out)
	return out, nil
}

// AccountTree assembles the hierarchy from parent pointers. Orphans (a
// parent id that no longer resolves) are surfaced as roots rather than
// dropped.
func (r *AccountRepo) AccountTree() ([]*coa.TreeNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make(map[string]*coa.TreeNode, len(r.byID))
	for id, a := range r.byID {
		nodes[id] = &coa.TreeNode{Account: coa.Rehydrate(a)}
	}

	var roots []*coa.TreeNode
	for _, n := range nodes {
		if n.Account.ParentID == "" {
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[n.Account.ParentID]
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].Account.Code < roots[j].Account.Code })
	for _, n := range nodes {
		children := n.Children
		sort.Slice(children, func(i, j int) bool { return children[i].Account.Code < children[j].Account.Code })
	}
	return roots, nil
}

func (r *AccountRepo) Save(a *coa.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = *a
	return nil
}

func (r *AccountRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %s", coa.ErrAccountNotFound, id)
	}
	if !a.CanDelete() || r.txnCount[id] > 0 {
		return fmt.Errorf("%w: %s", coa.ErrHasTransactions, a.Code)
	}
	delete(r.byID, id)
	return nil
}

func (r *AccountRepo) HasTransactions(id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.txnCount[id] > 0, nil
}

func (r *AccountRepo) CodeExists(code coa.Code) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.byID {
		if a.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// RecordPosting bumps the posted-line count for an account and flips its
// HasTransactions flag. Called by whoever persists posted entries.
func (r *AccountRepo) RecordPosting(accountID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txnCount[accountID]++
	if a, ok := r.byID[accountID]; ok {
		a.HasTransactions = true
		r.byID[accountID] = a
	}
}

func sortAccounts(accounts []*coa.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
}
