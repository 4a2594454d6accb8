package fiscal

// PeriodRepository is the persistence port for fiscal period states.
type PeriodRepository interface {
	Find(p Period) (*State, error)
	FindByYear(year int) ([]*State, error)
	Save(s *State) error
}

// BalanceRepository is the persistence port for account balance rollups.
type BalanceRepository interface {
	Find(accountID string, p Period) (*Balance, error)
	FindByPeriod(p Period) ([]*Balance, error)
	FindByAccount(accountID string) ([]*Balance, error)
	Save(b *Balance) error
}
