package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/budget"
)

type budgetKey struct {
	accountID  string
	fiscalYear int
}

// BudgetRepo is an in-memory budget.Repository.
type BudgetRepo struct {
	mu    sync.RWMutex
	byKey map[budgetKey]budget.Budget
}

// NewBudgetRepo creates an empty budget repository.
func NewBudgetRepo() *BudgetRepo {
	return &BudgetRepo{byKey: make(map[budgetKey]budget.Budget)}
}

func (r *BudgetRepo) Find(accountID string, fiscalYear int) (*budget.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byKey[budgetKey{accountID, fiscalYear}]
	if !ok {
		return nil, fmt.Errorf("%w: account %s year %d", budget.ErrNotFound, accountID, fiscalYear)
	}
	copied := b
	return &copied, nil
}

func (r *BudgetRepo) FindByYear(fiscalYear int) ([]*budget.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*budget.Budget
	for k, b := range r.byKey {
		if k.fiscalYear == fiscalYear {
			copied := b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (r *BudgetRepo) Save(b *budget.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[budgetKey{b.AccountID, b.FiscalYear}] = *b
	return nil
}
