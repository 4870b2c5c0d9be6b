package memory

import (
	"context"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type ServiceOrderMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]entities.ServiceOrder
	seq     int64
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderMemoryRepository)(nil)

func NewServiceOrderMemoryRepository() *ServiceOrderMemoryRepository {
	return &ServiceOrderMemoryRepository{records: map[string]entities.ServiceOrder{}}
}

func (r *ServiceOrderMemoryRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ServiceOrder, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *ServiceOrderMemoryRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *ServiceOrderMemoryRepository) ListByVehicleID(_ context.Context, vehicleID string) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ServiceOrder, 0)
	for _, id := range r.order {
		if o := r.records[id]; o.VehicleID == vehicleID {
			out = append(out, o)
		}
	}
	return out, nil
}

// NextSequence is monotonic for the lifetime of the store; deletes never
// release numbers.
func (r *ServiceOrderMemoryRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *ServiceOrderMemoryRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[o.ID]; !exists {
		r.order = append(r.order, o.ID)
	}
	r.records[o.ID] = o
	return o, nil
}

func (r *ServiceOrderMemoryRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[o.ID]; !exists {
		return entities.ServiceOrder{}, nil
	}
	r.records[o.ID] = o
	return o, nil
}

func (r *ServiceOrderMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	r.order = removeID(r.order, id)
	return true, nil
}
