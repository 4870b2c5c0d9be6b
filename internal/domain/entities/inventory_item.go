package entities

import "time"

// StockStatus is derived from the current stock against the minimum.
type StockStatus string

const (
	StockStatusAdequate   StockStatus = "ADEQUATE"
	StockStatusLow        StockStatus = "LOW_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

var stockStatusLabels = map[StockStatus]string{
	StockStatusAdequate:   "Adequado",
	StockStatusLow:        "Estoque Baixo",
	StockStatusOutOfStock: "Sem Estoque",
}

func (s StockStatus) DisplayLabel() string {
	return stockStatusLabels[s]
}

// InventoryItem is a part or supply kept in stock. SupplierID is an optional
// weak reference.
type InventoryItem struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	CostPrice    float64    `json:"cost_price"`
	SalePrice    float64    `json:"sale_price"`
	Stock        int        `json:"stock"`
	MinStock     int        `json:"min_stock"`
	SupplierID   string     `json:"supplier_id,omitempty"`
	LastPurchase *time.Time `json:"last_purchase,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// StockStatus derives the item's status: out of stock at zero, low stock
// while stock does not exceed the minimum, adequate above it. The boundary
// stock == minStock counts as low.
func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.Stock == 0:
		return StockStatusOutOfStock
	case i.Stock <= i.MinStock:
		return StockStatusLow
	default:
		return StockStatusAdequate
	}
}

// Validate checks the field constraints and returns the first violation.
func (i InventoryItem) Validate() error {
	if i.Code == "" {
		return NewValidationError("code", "is required")
	}
	if i.Name == "" {
		return NewValidationError("name", "is required")
	}
	if i.Category == "" {
		return NewValidationError("category", "is required")
	}
	if i.CostPrice < 0 {
		return NewValidationError("cost_price", "must not be negative")
	}
	if i.SalePrice < 0 {
		return NewValidationError("sale_price", "must not be negative")
	}
	if i.Stock < 0 {
		return NewValidationError("stock", "must not be negative")
	}
	if i.MinStock < 0 {
		return NewValidationError("min_stock", "must not be negative")
	}
	return nil
}
