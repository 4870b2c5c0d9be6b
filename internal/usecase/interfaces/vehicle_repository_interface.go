package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IVehicleRepository abstracts the vehicle collection.
//
// ListByClientID backs both the client-delete integrity rule and the
// vehicle picker of the service order form (vehicles of one client).
type IVehicleRepository interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) (bool, error)
}
