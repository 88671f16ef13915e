package memory

import (
	"context"
	"sort"
	"sync"

	"villa_pricing/internal/domain/entities"
	"villa_pricing/internal/usecase/interfaces"
)

// PriceOverrideRepository keeps overrides in process memory. They do not
// survive a restart.
type PriceOverrideRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PriceOverride
}

var _ interfaces.IPriceOverrideRepository = (*PriceOverrideRepository)(nil)

func NewPriceOverrideRepository() *PriceOverrideRepository {
	return &PriceOverrideRepository{items: make(map[string]entities.PriceOverride)}
}

func (r *PriceOverrideRepository) Get(_ context.Context, roomID string) (entities.PriceOverride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[roomID], nil
}

func (r *PriceOverrideRepository) Put(_ context.Context, o entities.PriceOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[o.RoomID] = o
	return nil
}

func (r *PriceOverrideRepository) Delete(_ context.Context, roomID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[roomID]
	delete(r.items, roomID)
	return ok, nil
}

// DeleteAll empties the store and returns the cleared room ids, sorted.
func (r *PriceOverrideRepository) DeleteAll(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	r.items = make(map[string]entities.PriceOverride)
	return ids, nil
}
