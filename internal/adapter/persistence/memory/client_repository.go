// Package memory implements the repository interfaces over process memory.
// It is the default storage driver: one ordered collection per entity,
// guarded by a mutex so the Gin handlers can share a single instance.
// Lookups return the zero value when the id is absent, matching the
// repository conventions.
package memory

import (
	"context"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type ClientMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]entities.Client
}

var _ interfaces.IClientRepository = (*ClientMemoryRepository)(nil)

func NewClientMemoryRepository() *ClientMemoryRepository {
	return &ClientMemoryRepository{records: map[string]entities.Client{}}
}

func (r *ClientMemoryRepository) List(_ context.Context) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *ClientMemoryRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *ClientMemoryRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[c.ID]; !exists {
		r.order = append(r.order, c.ID)
	}
	r.records[c.ID] = c
	return c, nil
}

func (r *ClientMemoryRepository) Update(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[c.ID]; !exists {
		return entities.Client{}, nil
	}
	r.records[c.ID] = c
	return c, nil
}

func (r *ClientMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	r.order = removeID(r.order, id)
	return true, nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
