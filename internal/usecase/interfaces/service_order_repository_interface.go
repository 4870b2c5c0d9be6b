package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts the service order collection.
//
// NextSequence yields the monotonic counter behind the OS00001 display
// numbers. Values are never reused, including after deletes.
type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error)
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
