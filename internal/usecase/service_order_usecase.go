package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type ServiceOrderItemInput struct {
	ID          string
	Description string
	Quantity    int
	UnitPrice   float64
	Type        entities.ServiceOrderItemType
}

type CreateServiceOrderInput struct {
	ClientID     string
	VehicleID    string
	Status       entities.ServiceOrderStatus
	EntryDate    time.Time
	ExitDate     *time.Time
	Items        []ServiceOrderItemInput
	Observations string
}

// UpdateServiceOrderInput is a partial update: nil fields keep the stored
// value. Items, when present, replace the whole item sequence; Number is
// never updatable.
type UpdateServiceOrderInput struct {
	ClientID     *string
	VehicleID    *string
	Status       *entities.ServiceOrderStatus
	EntryDate    *time.Time
	ExitDate     *time.Time
	Items        *[]ServiceOrderItemInput
	Observations *string
}

// IServiceOrderUseCase exposes the service order operations consumed by the
// HTTP layer.

type IServiceOrderUseCase interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	clientRepo  interfaces.IClientRepository
	vehicleRepo interfaces.IVehicleRepository
	ids         interfaces.IIDGenerator
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, clientRepo interfaces.IClientRepository, vehicleRepo interfaces.IVehicleRepository, ids interfaces.IIDGenerator) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, clientRepo: clientRepo, vehicleRepo: vehicleRepo, ids: ids}
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrEmptyID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, entities.NewNotFoundError("service order", id)
	}
	return o, nil
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	now := time.Now().UTC()

	status := in.Status
	if status == "" {
		status = entities.OrderStatusPending
	}
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}

	o := entities.ServiceOrder{
		ClientID:     strings.TrimSpace(in.ClientID),
		VehicleID:    strings.TrimSpace(in.VehicleID),
		Status:       status,
		EntryDate:    entryDate,
		ExitDate:     in.ExitDate,
		Items:        u.buildItems(in.Items),
		Observations: strings.TrimSpace(in.Observations),
	}
	o.TotalAmount = entities.CalculateItemsTotal(o.Items)

	if err := o.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.checkVehicleBelongsToClient(ctx, o.ClientID, o.VehicleID); err != nil {
		return entities.ServiceOrder{}, err
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o.ID = u.ids.NewID()
	o.Number = fmt.Sprintf("OS%05d", seq)
	o.CreatedAt = now
	return u.repo.Create(ctx, o)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in UpdateServiceOrderInput) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if in.ClientID != nil {
		current.ClientID = strings.TrimSpace(*in.ClientID)
	}
	if in.VehicleID != nil {
		current.VehicleID = strings.TrimSpace(*in.VehicleID)
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.EntryDate != nil {
		current.EntryDate = *in.EntryDate
	}
	if in.ExitDate != nil {
		current.ExitDate = in.ExitDate
	}
	if in.Items != nil {
		current.Items = u.buildItems(*in.Items)
	}
	if in.Observations != nil {
		current.Observations = strings.TrimSpace(*in.Observations)
	}

	// The stored total always tracks the item subtotals.
	current.TotalAmount = entities.CalculateItemsTotal(current.Items)

	if err := current.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.checkVehicleBelongsToClient(ctx, current.ClientID, current.VehicleID); err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, entities.NewNotFoundError("service order", id)
	}
	return updated, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := u.repo.Delete(ctx, o.ID)
	if err != nil {
		return err
	}
	if !removed {
		return entities.NewNotFoundError("service order", id)
	}
	return nil
}

// buildItems assigns ids to new lines; lines carrying an id keep it so edits
// preserve item identity.
func (u *ServiceOrderUseCase) buildItems(in []ServiceOrderItemInput) []entities.ServiceOrderItem {
	items := make([]entities.ServiceOrderItem, 0, len(in))
	for _, it := range in {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			id = u.ids.NewID()
		}
		items = append(items, entities.ServiceOrderItem{
			ID:          id,
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Type:        it.Type,
		})
	}
	return items
}

func (u *ServiceOrderUseCase) checkVehicleBelongsToClient(ctx context.Context, clientID, vehicleID string) error {
	c, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return entities.NewValidationError("client_id", "does not reference an existing client")
	}

	v, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return entities.NewValidationError("vehicle_id", "does not reference an existing vehicle")
	}
	if v.ClientID != c.ID {
		return entities.NewValidationError("vehicle_id", "does not belong to the selected client")
	}
	return nil
}
