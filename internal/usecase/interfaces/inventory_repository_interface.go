package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IInventoryRepository abstracts the inventory collection.
type IInventoryRepository interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Create(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error)
	Update(ctx context.Context, i entities.InventoryItem) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}
