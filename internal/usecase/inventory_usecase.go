package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

type CreateInventoryItemInput struct {
	Code         string
	Name         string
	Description  string
	Category     string
	CostPrice    float64
	SalePrice    float64
	Stock        int
	MinStock     int
	SupplierID   string
	LastPurchase *time.Time
}

// UpdateInventoryItemInput is a partial update: nil fields keep the stored
// value.
type UpdateInventoryItemInput struct {
	Code         *string
	Name         *string
	Description  *string
	Category     *string
	CostPrice    *float64
	SalePrice    *float64
	Stock        *int
	MinStock     *int
	SupplierID   *string
	LastPurchase *time.Time
}

// IInventoryUseCase exposes the inventory operations consumed by the HTTP
// layer.

type IInventoryUseCase interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Create(ctx context.Context, in CreateInventoryItemInput) (entities.InventoryItem, error)
	Update(ctx context.Context, id string, in UpdateInventoryItemInput) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
	ids  interfaces.IIDGenerator
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, ids interfaces.IIDGenerator) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, ids: ids}
}

func (u *InventoryUseCase) List(ctx context.Context) ([]entities.InventoryItem, error) {
	return u.repo.List(ctx)
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrEmptyID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if i.ID == "" {
		return entities.InventoryItem{}, entities.NewNotFoundError("inventory item", id)
	}
	return i, nil
}

func (u *InventoryUseCase) Create(ctx context.Context, in CreateInventoryItemInput) (entities.InventoryItem, error) {
	i := entities.InventoryItem{
		Code:         strings.TrimSpace(in.Code),
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		Stock:        in.Stock,
		MinStock:     in.MinStock,
		SupplierID:   strings.TrimSpace(in.SupplierID),
		LastPurchase: in.LastPurchase,
	}
	if err := i.Validate(); err != nil {
		return entities.InventoryItem{}, err
	}

	i.ID = u.ids.NewID()
	i.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, i)
}

func (u *InventoryUseCase) Update(ctx context.Context, id string, in UpdateInventoryItemInput) (entities.InventoryItem, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	if in.Code != nil {
		current.Code = strings.TrimSpace(*in.Code)
	}
	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		current.Category = strings.TrimSpace(*in.Category)
	}
	if in.CostPrice != nil {
		current.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		current.SalePrice = *in.SalePrice
	}
	if in.Stock != nil {
		current.Stock = *in.Stock
	}
	if in.MinStock != nil {
		current.MinStock = *in.MinStock
	}
	if in.SupplierID != nil {
		current.SupplierID = strings.TrimSpace(*in.SupplierID)
	}
	if in.LastPurchase != nil {
		current.LastPurchase = in.LastPurchase
	}

	if err := current.Validate(); err != nil {
		return entities.InventoryItem{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if updated.ID == "" {
		return entities.InventoryItem{}, entities.NewNotFoundError("inventory item", id)
	}
	return updated, nil
}

func (u *InventoryUseCase) Delete(ctx context.Context, id string) error {
	i, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := u.repo.Delete(ctx, i.ID)
	if err != nil {
		return err
	}
	if !removed {
		return entities.NewNotFoundError("inventory item", id)
	}
	return nil
}
