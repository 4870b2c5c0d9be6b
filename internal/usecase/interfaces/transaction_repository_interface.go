package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// ITransactionRepository abstracts the financial transaction collection.
type ITransactionRepository interface {
	List(ctx context.Context) ([]entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByType(ctx context.Context, t entities.TransactionType) ([]entities.Transaction, error)
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	Update(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}
