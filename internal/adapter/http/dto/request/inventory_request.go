package request

import (
	"time"

	"oficina_xpto/internal/usecase"
)

type CreateInventoryItemRequest struct {
	Code         string     `json:"code" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Category     string     `json:"category" binding:"required"`
	CostPrice    float64    `json:"cost_price"`
	SalePrice    float64    `json:"sale_price"`
	Stock        int        `json:"stock"`
	MinStock     int        `json:"min_stock"`
	SupplierID   string     `json:"supplier_id"`
	LastPurchase *time.Time `json:"last_purchase"`
}

func (r CreateInventoryItemRequest) ToInput() usecase.CreateInventoryItemInput {
	return usecase.CreateInventoryItemInput{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		CostPrice:    r.CostPrice,
		SalePrice:    r.SalePrice,
		Stock:        r.Stock,
		MinStock:     r.MinStock,
		SupplierID:   r.SupplierID,
		LastPurchase: r.LastPurchase,
	}
}

// UpdateInventoryItemRequest carries a partial update; absent fields keep
// the stored value.
type UpdateInventoryItemRequest struct {
	Code         *string    `json:"code"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	CostPrice    *float64   `json:"cost_price"`
	SalePrice    *float64   `json:"sale_price"`
	Stock        *int       `json:"stock"`
	MinStock     *int       `json:"min_stock"`
	SupplierID   *string    `json:"supplier_id"`
	LastPurchase *time.Time `json:"last_purchase"`
}

func (r UpdateInventoryItemRequest) ToInput() usecase.UpdateInventoryItemInput {
	return usecase.UpdateInventoryItemInput{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		CostPrice:    r.CostPrice,
		SalePrice:    r.SalePrice,
		Stock:        r.Stock,
		MinStock:     r.MinStock,
		SupplierID:   r.SupplierID,
		LastPurchase: r.LastPurchase,
	}
}
