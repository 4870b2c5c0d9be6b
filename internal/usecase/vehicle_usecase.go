package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type CreateVehicleInput struct {
	Plate    string
	Model    string
	Brand    string
	Year     int
	Color    string
	Chassis  string
	Mileage  int
	ClientID string
}

// UpdateVehicleInput is a partial update: nil fields keep the stored value.
type UpdateVehicleInput struct {
	Plate    *string
	Model    *string
	Brand    *string
	Year     *int
	Color    *string
	Chassis  *string
	Mileage  *int
	ClientID *string
}

// IVehicleUseCase exposes the vehicle operations consumed by the HTTP layer.

type IVehicleUseCase interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error)
	Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo       interfaces.IVehicleRepository
	clientRepo interfaces.IClientRepository
	orderRepo  interfaces.IServiceOrderRepository
	ids        interfaces.IIDGenerator
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, clientRepo interfaces.IClientRepository, orderRepo interfaces.IServiceOrderRepository, ids interfaces.IIDGenerator) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clientRepo: clientRepo, orderRepo: orderRepo, ids: ids}
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Vehicle, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrEmptyID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrEmptyID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, entities.NewNotFoundError("vehicle", id)
	}
	return v, nil
}

func (u *VehicleUseCase) Create(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error) {
	v := entities.Vehicle{
		Plate:    strings.ToUpper(strings.TrimSpace(in.Plate)),
		Model:    strings.TrimSpace(in.Model),
		Brand:    strings.TrimSpace(in.Brand),
		Year:     in.Year,
		Color:    strings.TrimSpace(in.Color),
		Chassis:  strings.TrimSpace(in.Chassis),
		Mileage:  in.Mileage,
		ClientID: strings.TrimSpace(in.ClientID),
	}
	if err := v.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	if err := u.checkClientExists(ctx, v.ClientID); err != nil {
		return entities.Vehicle{}, err
	}

	v.ID = u.ids.NewID()
	v.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, v)
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in UpdateVehicleInput) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	if in.Plate != nil {
		current.Plate = strings.ToUpper(strings.TrimSpace(*in.Plate))
	}
	if in.Model != nil {
		current.Model = strings.TrimSpace(*in.Model)
	}
	if in.Brand != nil {
		current.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.Year != nil {
		current.Year = *in.Year
	}
	if in.Color != nil {
		current.Color = strings.TrimSpace(*in.Color)
	}
	if in.Chassis != nil {
		current.Chassis = strings.TrimSpace(*in.Chassis)
	}
	if in.Mileage != nil {
		current.Mileage = *in.Mileage
	}
	if in.ClientID != nil {
		current.ClientID = strings.TrimSpace(*in.ClientID)
	}

	if err := current.Validate(); err != nil {
		return entities.Vehicle{}, err
	}
	if err := u.checkClientExists(ctx, current.ClientID); err != nil {
		return entities.Vehicle{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == "" {
		return entities.Vehicle{}, entities.NewNotFoundError("vehicle", id)
	}
	return updated, nil
}

// Delete removes a vehicle. It fails with IntegrityError while any service
// order still references the vehicle.
func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	orders, err := u.orderRepo.ListByVehicleID(ctx, v.ID)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return entities.NewIntegrityError("has dependent service orders")
	}

	removed, err := u.repo.Delete(ctx, v.ID)
	if err != nil {
		return err
	}
	if !removed {
		return entities.NewNotFoundError("vehicle", id)
	}
	return nil
}

func (u *VehicleUseCase) checkClientExists(ctx context.Context, clientID string) error {
	c, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return entities.NewValidationError("client_id", "does not reference an existing client")
	}
	return nil
}
