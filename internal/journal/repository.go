package journal

import (
	"time"

	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// Filter narrows FindAll results. Zero values match everything.
type Filter struct {
	Status   EntryStatus
	Type     EntryType
	DateFrom time.Time
	DateTo   time.Time
}

// Page is offset/limit pagination. A zero Limit means no limit.
type Page struct {
	Offset int
	Limit  int
}

// Repository is the persistence port for journal entries.
type Repository interface {
	FindByID(id string) (*Entry, error)
	FindByNumber(number string) (*Entry, error)
	FindAll(f Filter, p Page) ([]*Entry, error)
	FindByAccountID(accountID string) ([]*Entry, error)
	FindBySourceReference(service, referenceID string) (*Entry, error)
	FindByPeriod(p fiscal.Period) ([]*Entry, error)
	Save(e *Entry) error
	Delete(id string) error
	NextEntryNumber(year int) (string, error)
}
