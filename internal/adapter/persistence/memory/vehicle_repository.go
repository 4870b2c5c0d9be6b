package memory

import (
	"context"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type VehicleMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]entities.Vehicle
}

var _ interfaces.IVehicleRepository = (*VehicleMemoryRepository)(nil)

func NewVehicleMemoryRepository() *VehicleMemoryRepository {
	return &VehicleMemoryRepository{records: map[string]entities.Vehicle{}}
}

func (r *VehicleMemoryRepository) List(_ context.Context) ([]entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *VehicleMemoryRepository) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *VehicleMemoryRepository) ListByClientID(_ context.Context, clientID string) ([]entities.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Vehicle, 0)
	for _, id := range r.order {
		if v := r.records[id]; v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *VehicleMemoryRepository) Create(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[v.ID]; !exists {
		r.order = append(r.order, v.ID)
	}
	r.records[v.ID] = v
	return v, nil
}

func (r *VehicleMemoryRepository) Update(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[v.ID]; !exists {
		return entities.Vehicle{}, nil
	}
	r.records[v.ID] = v
	return v, nil
}

func (r *VehicleMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	r.order = removeID(r.order, id)
	return true, nil
}
