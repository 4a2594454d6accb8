package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// PeriodRepo is an in-memory fiscal.PeriodRepository.
type PeriodRepo struct {
	mu       sync.RWMutex
	byPeriod map[fiscal.Period]fiscal.State
}

// NewPeriodRepo creates an empty period repository.
func NewPeriodRepo() *PeriodRepo {
	return &PeriodRepo{byPeriod: make(map[fiscal.Period]fiscal.State)}
}

func (r *PeriodRepo) Find(p fiscal.Period) (*fiscal.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byPeriod[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fiscal.ErrPeriodNotFound, p)
	}
	return fiscal.RehydrateState(s), nil
}

func (r *PeriodRepo) FindByYear(year int) ([]*fiscal.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*fiscal.State
	for p, s := range r.byPeriod {
		if p.Year == year {
			out = append(out, fiscal.RehydrateState(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

func (r *PeriodRepo) FindAll() ([]*fiscal.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*fiscal.State
	for _, s := range r.byPeriod {
		out = append(out, fiscal.RehydrateState(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

func (r *PeriodRepo) Save(s *fiscal.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byPeriod[s.Period] = *s
	return nil
}

type balanceKey struct {
	accountID string
	period    fiscal.Period
}

// BalanceRepo is an in-memory fiscal.BalanceRepository.
type BalanceRepo struct {
	mu    sync.RWMutex
	byKey map[balanceKey]fiscal.Balance
}

// NewBalanceRepo creates an empty balance repository.
func NewBalanceRepo() *BalanceRepo {
	return &BalanceRepo{byKey: make(map[balanceKey]fiscal.Balance)}
}

func (r *BalanceRepo) Find(accountID string, p fiscal.Period) (*fiscal.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byKey[balanceKey{accountID, p}]
	if !ok {
		return nil, fmt.Errorf("%w: account %s period %s", fiscal.ErrBalanceNotFound, accountID, p)
	}
	copied := b
	return &copied, nil
}

func (r *BalanceRepo) FindByPeriod(p fiscal.Period) ([]*fiscal.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*fiscal.Balance
	for k, b := range r.byKey {
		if k.period == p {
			copied := b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (r *BalanceRepo) FindByAccount(accountID string) ([]*fiscal.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*fiscal.Balance
	for k, b := range r.byKey {
		if k.accountID == accountID {
			copied := b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, nil
}

func (r *BalanceRepo) FindAll() ([]*fiscal.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*fiscal.Balance
	for _, b := range r.byKey {
		copied := b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period.Before(out[j].Period)
		}
		return out[i].AccountID < out[j].AccountID
	})
	return out, nil
}

func (r *BalanceRepo) Save(b *fiscal.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[balanceKey{b.AccountID, b.Period}] = *b
	return nil
}
