package memory

import (
	"context"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type InventoryMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]entities.InventoryItem
}

var _ interfaces.IInventoryRepository = (*InventoryMemoryRepository)(nil)

func NewInventoryMemoryRepository() *InventoryMemoryRepository {
	return &InventoryMemoryRepository{records: map[string]entities.InventoryItem{}}
}

func (r *InventoryMemoryRepository) List(_ context.Context) ([]entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *InventoryMemoryRepository) GetByID(_ context.Context, id string) (entities.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *InventoryMemoryRepository) Create(_ context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[i.ID]; !exists {
		r.order = append(r.order, i.ID)
	}
	r.records[i.ID] = i
	return i, nil
}

func (r *InventoryMemoryRepository) Update(_ context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[i.ID]; !exists {
		return entities.InventoryItem{}, nil
	}
	r.records[i.ID] = i
	return i, nil
}

func (r *InventoryMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	r.order = removeID(r.order, id)
	return true, nil
}
