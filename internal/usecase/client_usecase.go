package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var ErrEmptyID = errors.New("empty id")

// CreateClientInput carries the client fields supplied by a form submit.
// ID and CreatedAt are assigned here, never by the caller.
type CreateClientInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
	Address  string
}

// UpdateClientInput is a partial update: nil fields keep the stored value.
type UpdateClientInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Document *string
	Address  *string
}

// IClientUseCase exposes the client operations consumed by the HTTP layer.

type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, in CreateClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, in UpdateClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	vehicleRepo interfaces.IVehicleRepository
	ids         interfaces.IIDGenerator
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, vehicleRepo interfaces.IVehicleRepository, ids interfaces.IIDGenerator) *ClientUseCase {
	return &ClientUseCase{repo: repo, vehicleRepo: vehicleRepo, ids: ids}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrEmptyID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, entities.NewNotFoundError("client", id)
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	c := entities.Client{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Document: strings.TrimSpace(in.Document),
		Address:  strings.TrimSpace(in.Address),
	}
	if err := c.Validate(); err != nil {
		return entities.Client{}, err
	}

	c.ID = u.ids.NewID()
	c.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in UpdateClientInput) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	// Merge preserves ID and CreatedAt.
	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		current.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		current.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Document != nil {
		current.Document = strings.TrimSpace(*in.Document)
	}
	if in.Address != nil {
		current.Address = strings.TrimSpace(*in.Address)
	}

	if err := current.Validate(); err != nil {
		return entities.Client{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, entities.NewNotFoundError("client", id)
	}
	return updated, nil
}

// Delete removes a client. It fails with IntegrityError while any vehicle
// still references the client; the record is left untouched in that case.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	vehicles, err := u.vehicleRepo.ListByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(vehicles) > 0 {
		return entities.NewIntegrityError("has dependent vehicles")
	}

	removed, err := u.repo.Delete(ctx, c.ID)
	if err != nil {
		return err
	}
	if !removed {
		return entities.NewNotFoundError("client", id)
	}
	return nil
}
