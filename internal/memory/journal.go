package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
	"github.com/balancebook-dev/balancebook/internal/journal"
)

// JournalRepo is an in-memory journal.Repository. Entry numbers are
// handed out from a per-year sequence.
type JournalRepo struct {
	mu   sync.RWMutex
	byID map[string]journal.Entry
	seqs map[int]int
}

// NewJournalRepo creates an empty journal repository.
func NewJournalRepo() *JournalRepo {
	return &JournalRepo{
		byID: make(map[string]journal.Entry),
		seqs: make(map[int]int),
	}
}

func (r *JournalRepo) FindByID(id string) (*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", journal.ErrEntryNotFound, id)
	}
	return journal.Rehydrate(e), nil
}

func (r *JournalRepo) FindByNumber(number string) (*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.byID {
		if e.Number == number {
			return journal.Rehydrate(e), nil
		}
	}
	return nil, fmt.Errorf("%w: number %s", journal.ErrEntryNotFound, number)
}

func (r *JournalRepo) FindAll(f journal.Filter, p journal.Page) ([]*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*journal.Entry
	for _, e := range r.byID {
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if !f.DateFrom.IsZero() && e.Date.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && e.Date.After(f.DateTo) {
			continue
		}
		out = append(out, journal.Rehydrate(e))
	}
	sortEntries(out)

	if p.Offset > len(out) {
		return nil, nil
	}
	out = out[p.Offset:]
	if p.Limit > 0 && p.Limit < len(out) {
		out = out[:p.Limit]
	}
	return out, nil
}

func (r *JournalRepo) FindByAccountID(accountID string) ([]*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*journal.Entry
	for _, e := range r.byID {
		for _, line := range e.Lines {
			if line.AccountID == accountID {
				out = append(out, journal.Rehydrate(e))
				break
			}
		}
	}
	sortEntries(out)
	return out, nil
}

func (r *JournalRepo) FindBySourceReference(service, referenceID string) (*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.byID {
		if e.SourceService == service && e.SourceReferenceID == referenceID {
			return journal.Rehydrate(e), nil
		}
	}
	return nil, fmt.Errorf("%w: source %s/%s", journal.ErrEntryNotFound, service, referenceID)
}

func (r *JournalRepo) FindByPeriod(p fiscal.Period) ([]*journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*journal.Entry
	for _, e := range r.byID {
		if fiscal.FromDate(e.Date) == p {
			out = append(out, journal.Rehydrate(e))
		}
	}
	sortEntries(out)
	return out, nil
}

func (r *JournalRepo) Save(e *journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[e.ID] = *e
	// Keep the sequence ahead of rehydrated entries so a reloaded book
	// never reissues a number.
	if year, seq, err := journal.ParseNumber(e.Number); err == nil && seq > r.seqs[year] {
		r.seqs[year] = seq
	}
	return nil
}

// Delete removes a draft entry. Posted and voided entries are permanent
// records and never deleted.
func (r *JournalRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %s", journal.ErrEntryNotFound, id)
	}
	if e.Status != journal.StatusDraft {
		return fmt.Errorf("%w: %s is %s", journal.ErrNotDraft, e.Number, e.Status)
	}
	delete(r.byID, id)
	return nil
}

func (r *JournalRepo) NextEntryNumber(year int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seqs[year]++
	return journal.FormatNumber(year, r.seqs[year]), nil
}

func sortEntries(entries []*journal.Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Number < entries[j].Number })
}
