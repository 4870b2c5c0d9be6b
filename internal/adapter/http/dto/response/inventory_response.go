package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type InventoryItemResponse struct {
	ID               string     `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category"`
	CostPrice        float64    `json:"cost_price"`
	SalePrice        float64    `json:"sale_price"`
	Stock            int        `json:"stock"`
	MinStock         int        `json:"min_stock"`
	SupplierID       string     `json:"supplier_id,omitempty"`
	LastPurchase     *time.Time `json:"last_purchase,omitempty"`
	StockStatus      string     `json:"stock_status"`
	StockStatusLabel string     `json:"stock_status_label"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	status := i.StockStatus()
	return InventoryItemResponse{
		ID:               i.ID,
		Code:             i.Code,
		Name:             i.Name,
		Description:      i.Description,
		Category:         i.Category,
		CostPrice:        i.CostPrice,
		SalePrice:        i.SalePrice,
		Stock:            i.Stock,
		MinStock:         i.MinStock,
		SupplierID:       i.SupplierID,
		LastPurchase:     i.LastPurchase,
		StockStatus:      string(status),
		StockStatusLabel: status.DisplayLabel(),
		CreatedAt:        i.CreatedAt,
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromInventoryItem(i))
	}
	return out
}
