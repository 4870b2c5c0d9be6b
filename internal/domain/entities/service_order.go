package entities

import (
	"math"
	"time"
)

// ServiceOrderStatus is the internal status tag of a service order.
//
// The core compares tags only; the Portuguese text shown by the UI comes
// from DisplayLabel. There is no enforced transition graph: any status is
// reachable from any other via update.
type ServiceOrderStatus string

const (
	OrderStatusPending      ServiceOrderStatus = "PENDING"
	OrderStatusInProgress   ServiceOrderStatus = "IN_PROGRESS"
	OrderStatusWaitingParts ServiceOrderStatus = "WAITING_PARTS"
	OrderStatusCompleted    ServiceOrderStatus = "COMPLETED"
	OrderStatusDelivered    ServiceOrderStatus = "DELIVERED"
	OrderStatusCanceled     ServiceOrderStatus = "CANCELED"
)

// AllOrderStatuses lists every status in display order (dashboard charts
// iterate over it).
var AllOrderStatuses = []ServiceOrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusWaitingParts,
	OrderStatusCompleted,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

var orderStatusLabels = map[ServiceOrderStatus]string{
	OrderStatusPending:      "Pendente",
	OrderStatusInProgress:   "Em Andamento",
	OrderStatusWaitingParts: "Aguardando Peças",
	OrderStatusCompleted:    "Concluído",
	OrderStatusDelivered:    "Entregue",
	OrderStatusCanceled:     "Cancelado",
}

func (s ServiceOrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

func (s ServiceOrderStatus) DisplayLabel() string {
	return orderStatusLabels[s]
}

// ServiceOrderItemType distinguishes labor from parts on an order line.
type ServiceOrderItemType string

const (
	ItemTypeService ServiceOrderItemType = "SERVICE"
	ItemTypePart    ServiceOrderItemType = "PART"
)

// ServiceOrderItem is a line of a service order. It is owned exclusively by
// its parent order and has no independent lifecycle.
type ServiceOrderItem struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	Quantity    int                  `json:"quantity"`
	UnitPrice   float64              `json:"unit_price"`
	Type        ServiceOrderItemType `json:"type"`
}

func (i ServiceOrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Validate checks the line constraints and returns the first violation.
func (i ServiceOrderItem) Validate() error {
	if len(i.Description) < 3 {
		return NewValidationError("description", "must have at least 3 characters")
	}
	if i.Quantity < 1 {
		return NewValidationError("quantity", "must be at least 1")
	}
	if i.UnitPrice < 0 {
		return NewValidationError("unit_price", "must not be negative")
	}
	if i.Type != ItemTypeService && i.Type != ItemTypePart {
		return NewValidationError("type", "must be SERVICE or PART")
	}
	return nil
}

// ServiceOrder is a repair job on a client's vehicle.
//
// Invariants enforced at save time:
//   - at least one item
//   - TotalAmount equals the sum of the item subtotals
//   - the vehicle belongs to the order's client
//
// Number is a zero-padded sequential display code (OS00001) assigned at
// creation and never changed.
type ServiceOrder struct {
	ID           string             `json:"id"`
	Number       string             `json:"number"`
	ClientID     string             `json:"client_id"`
	VehicleID    string             `json:"vehicle_id"`
	Status       ServiceOrderStatus `json:"status"`
	EntryDate    time.Time          `json:"entry_date"`
	ExitDate     *time.Time         `json:"exit_date,omitempty"`
	Items        []ServiceOrderItem `json:"items"`
	Observations string             `json:"observations,omitempty"`
	TotalAmount  float64            `json:"total_amount"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Validate checks the order's own field constraints, including every item.
func (o ServiceOrder) Validate() error {
	if o.ClientID == "" {
		return NewValidationError("client_id", "is required")
	}
	if o.VehicleID == "" {
		return NewValidationError("vehicle_id", "is required")
	}
	if !o.Status.Valid() {
		return NewValidationError("status", "is not a valid status")
	}
	if len(o.Items) == 0 {
		return NewValidationError("items", "must have at least 1 item")
	}
	for _, it := range o.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CalculateItemsTotal sums quantity x unit price over the items, rounded to
// 2 decimal places. An empty sequence totals 0; rejecting empty orders is
// the save path's job, not this function's.
func CalculateItemsTotal(items []ServiceOrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal()
	}
	return math.Round(total*100) / 100
}
