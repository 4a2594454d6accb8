package asset

import "github.com/balancebook-dev/balancebook/internal/fiscal"

// Repository is the persistence port for fixed assets. Save must
// compare-and-swap on Version: a save whose in-memory Version is not
// exactly one ahead of the stored Version fails with a conflict error,
// and the caller retries from a fresh read.
type Repository interface {
	FindByID(id string) (*FixedAsset, error)
	FindByCategory(categoryID string) ([]*FixedAsset, error)
	FindDepreciable() ([]*FixedAsset, error)
	Save(a *FixedAsset) error
	Delete(id string) error
}

// CategoryRepository is the persistence port for asset categories.
type CategoryRepository interface {
	FindByID(id string) (*Category, error)
	FindAll() ([]*Category, error)
	Save(c *Category) error
}

// ScheduleRepository stores projected schedules per asset.
type ScheduleRepository interface {
	FindByAsset(assetID string) ([]ScheduleLine, error)
	Replace(assetID string, lines []ScheduleLine) error
}

// RunRepository stores depreciation run history.
type RunRepository interface {
	FindByID(id string) (*Run, error)
	FindByPeriod(p fiscal.Period) ([]*Run, error)
	Save(r *Run) error
}
