package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/balancebook-dev/balancebook/internal/asset"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

// AssetRepo is an in-memory asset.Repository with compare-and-swap on the
// aggregate's Version field.
type AssetRepo struct {
	mu   sync.RWMutex
	byID map[string]asset.FixedAsset
}

// NewAssetRepo creates an empty asset repository.
func NewAssetRepo() *AssetRepo {
	return &AssetRepo{byID: make(map[string]asset.FixedAsset)}
}

func (r *AssetRepo) FindByID(id string) (*asset.FixedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", asset.ErrAssetNotFound, id)
	}
	return asset.RehydrateAsset(a), nil
}

func (r *AssetRepo) FindByCategory(categoryID string) ([]*asset.FixedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*asset.FixedAsset
	for _, a := range r.byID {
		if a.CategoryID == categoryID {
			out = append(out, asset.RehydrateAsset(a))
		}
	}
	sortAssets(out)
	return out, nil
}

func (r *AssetRepo) FindAll() ([]*asset.FixedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*asset.FixedAsset
	for _, a := range r.byID {
		out = append(out, asset.RehydrateAsset(a))
	}
	sortAssets(out)
	return out, nil
}

func (r *AssetRepo) FindDepreciable() ([]*asset.FixedAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	now := time.Now().UTC()
	var out []*asset.FixedAsset
	for _, a := range r.byID {
		rehydrated := asset.RehydrateAsset(a)
		if rehydrated.Depreciable(now) {
			out = append(out, rehydrated)
		}
	}
	sortAssets(out)
	return out, nil
}

// Save applies optimistic concurrency: the incoming Version must be
// exactly one ahead of the stored Version (or the asset must be new).
// Anything else means a concurrent writer won, and the caller must
// re-read and retry.
func (r *AssetRepo) Save(a *asset.FixedAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, exists := r.byID[a.ID]
	if exists && a.Version != stored.Version+1 {
		return &VersionConflictError{
			Entity:        "fixed_asset",
			ID:            a.ID,
			WantedVersion: a.Version,
			StoredVersion: stored.Version,
		}
	}
	r.byID[a.ID] = *a
	return nil
}

func (r *AssetRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("%w: id %s", asset.ErrAssetNotFound, id)
	}
	delete(r.byID, id)
	return nil
}

// CategoryRepo is an in-memory asset.CategoryRepository.
type CategoryRepo struct {
	mu   sync.RWMutex
	byID map[string]asset.Category
}

// NewCategoryRepo creates an empty category repository.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{byID: make(map[string]asset.Category)}
}

func (r *CategoryRepo) FindByID(id string) (*asset.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", asset.ErrCategoryNotFound, id)
	}
	copied := c
	return &copied, nil
}

func (r *CategoryRepo) FindAll() ([]*asset.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*asset.Category
	for _, c := range r.byID {
		copied := c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Save(c *asset.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID] = *c
	return nil
}

// ScheduleRepo is an in-memory asset.ScheduleRepository.
type ScheduleRepo struct {
	mu      sync.RWMutex
	byAsset map[string][]asset.ScheduleLine
}

// NewScheduleRepo creates an empty schedule repository.
func NewScheduleRepo() *ScheduleRepo {
	return &ScheduleRepo{byAsset: make(map[string][]asset.ScheduleLine)}
}

func (r *ScheduleRepo) FindByAsset(assetID string) ([]asset.ScheduleLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]asset.ScheduleLine(nil), r.byAsset[assetID]...), nil
}

func (r *ScheduleRepo) Replace(assetID string, lines []asset.ScheduleLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAsset[assetID] = append([]asset.ScheduleLine(nil), lines...)
	return nil
}

// RunRepo is an in-memory asset.RunRepository.
type RunRepo struct {
	mu   sync.RWMutex
	byID map[string]asset.Run
}

// NewRunRepo creates an empty run repository.
func NewRunRepo() *RunRepo {
	return &RunRepo{byID: make(map[string]asset.Run)}
}

func (r *RunRepo) FindByID(id string) (*asset.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", asset.ErrRunNotFound, id)
	}
	copied := run
	return &copied, nil
}

func (r *RunRepo) FindByPeriod(p fiscal.Period) ([]*asset.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*asset.Run
	for _, run := range r.byID {
		if run.Period == p {
			copied := run
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

func (r *RunRepo) Save(run *asset.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[run.ID] = *run
	return nil
}

func sortAssets(assets []*asset.FixedAsset) {
	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
}
