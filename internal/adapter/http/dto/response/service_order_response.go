package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServiceOrderItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type"`
	Subtotal    float64 `json:"subtotal"`
}

type ServiceOrderResponse struct {
	ID           string                     `json:"id"`
	Number       string                     `json:"number"`
	ClientID     string                     `json:"client_id"`
	VehicleID    string                     `json:"vehicle_id"`
	Status       string                     `json:"status"`
	StatusLabel  string                     `json:"status_label"`
	EntryDate    time.Time                  `json:"entry_date"`
	ExitDate     *time.Time                 `json:"exit_date,omitempty"`
	Items        []ServiceOrderItemResponse `json:"items"`
	Observations string                     `json:"observations,omitempty"`
	TotalAmount  float64                    `json:"total_amount"`
	CreatedAt    time.Time                  `json:"created_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]ServiceOrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ServiceOrderItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Type:        string(it.Type),
			Subtotal:    it.Subtotal(),
		})
	}
	return ServiceOrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		ClientID:     o.ClientID,
		VehicleID:    o.VehicleID,
		Status:       string(o.Status),
		StatusLabel:  o.Status.DisplayLabel(),
		EntryDate:    o.EntryDate,
		ExitDate:     o.ExitDate,
		Items:        items,
		Observations: o.Observations,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
