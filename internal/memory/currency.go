package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/balancebook-dev/balancebook/internal/currency"
)

// RateRepo is an in-memory currency.Repository. FindRate returns the
// latest rate effective at or before the requested time.
type RateRepo struct {
	mu    sync.RWMutex
	rates []currency.ExchangeRate
}

// NewRateRepo creates an empty exchange rate repository.
func NewRateRepo() *RateRepo {
	return &RateRepo{}
}

func (r *RateRepo) FindRate(from, to currency.Code, at time.Time) (*currency.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *currency.ExchangeRate
	for i := range r.rates {
		rate := r.rates[i]
		if rate.From != from || rate.To != to || rate.EffectiveDate.After(at) {
			continue
		}
		if best == nil || rate.EffectiveDate.After(best.EffectiveDate) {
			copied := rate
			best = &copied
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no %s/%s rate at %s", currency.ErrRateMismatch, from, to, at.Format("2006-01-02"))
	}
	return best, nil
}

func (r *RateRepo) Save(rate *currency.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = append(r.rates, *rate)
	return nil
}
