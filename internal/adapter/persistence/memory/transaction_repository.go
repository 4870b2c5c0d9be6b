package memory

import (
	"context"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type TransactionMemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]entities.Transaction
}

var _ interfaces.ITransactionRepository = (*TransactionMemoryRepository)(nil)

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{records: map[string]entities.Transaction{}}
}

func (r *TransactionMemoryRepository) List(_ context.Context) ([]entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Transaction, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *TransactionMemoryRepository) GetByID(_ context.Context, id string) (entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *TransactionMemoryRepository) ListByType(_ context.Context, t entities.TransactionType) ([]entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Transaction, 0)
	for _, id := range r.order {
		if tx := r.records[id]; tx.Type == t {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *TransactionMemoryRepository) Create(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[tx.ID]; !exists {
		r.order = append(r.order, tx.ID)
	}
	r.records[tx.ID] = tx
	return tx, nil
}

func (r *TransactionMemoryRepository) Update(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[tx.ID]; !exists {
		return entities.Transaction{}, nil
	}
	r.records[tx.ID] = tx
	return tx, nil
}

func (r *TransactionMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	r.order = removeID(r.order, id)
	return true, nil
}
