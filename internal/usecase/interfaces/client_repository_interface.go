package interfaces

import (
	"context"
	"oficina_xpto/internal/domain/entities"
)

// IClientRepository abstracts the client collection.
//
// Conventions shared by every repository here:
//   - List returns records in insertion order.
//   - GetByID/Update return the zero value (no error) when the id is absent;
//     use cases translate that into NotFoundError.
//   - Delete reports whether a record was removed.
type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
