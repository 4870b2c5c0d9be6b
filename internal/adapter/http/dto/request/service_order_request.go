package request

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type ServiceOrderItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	Type        string  `json:"type" binding:"required"`
}

func (r ServiceOrderItemRequest) toInput() usecase.ServiceOrderItemInput {
	return usecase.ServiceOrderItemInput{
		ID:          r.ID,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Type:        entities.ServiceOrderItemType(r.Type),
	}
}

type CreateServiceOrderRequest struct {
	ClientID     string                    `json:"client_id" binding:"required"`
	VehicleID    string                    `json:"vehicle_id" binding:"required"`
	Status       string                    `json:"status"`
	EntryDate    *time.Time                `json:"entry_date"`
	ExitDate     *time.Time                `json:"exit_date"`
	Items        []ServiceOrderItemRequest `json:"items" binding:"required"`
	Observations string                    `json:"observations"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	in := usecase.CreateServiceOrderInput{
		ClientID:     r.ClientID,
		VehicleID:    r.VehicleID,
		Status:       entities.ServiceOrderStatus(r.Status),
		ExitDate:     r.ExitDate,
		Items:        toItemInputs(r.Items),
		Observations: r.Observations,
	}
	if r.EntryDate != nil {
		in.EntryDate = *r.EntryDate
	}
	return in
}

// UpdateServiceOrderRequest carries a partial update; absent fields keep the
// stored value. Items, when present, replace the whole sequence. Number is
// not accepted: it never changes after creation.
type UpdateServiceOrderRequest struct {
	ClientID     *string                    `json:"client_id"`
	VehicleID    *string                    `json:"vehicle_id"`
	Status       *string                    `json:"status"`
	EntryDate    *time.Time                 `json:"entry_date"`
	ExitDate     *time.Time                 `json:"exit_date"`
	Items        *[]ServiceOrderItemRequest `json:"items"`
	Observations *string                    `json:"observations"`
}

func (r UpdateServiceOrderRequest) ToInput() usecase.UpdateServiceOrderInput {
	in := usecase.UpdateServiceOrderInput{
		ClientID:     r.ClientID,
		VehicleID:    r.VehicleID,
		EntryDate:    r.EntryDate,
		ExitDate:     r.ExitDate,
		Observations: r.Observations,
	}
	if r.Status != nil {
		s := entities.ServiceOrderStatus(*r.Status)
		in.Status = &s
	}
	if r.Items != nil {
		items := toItemInputs(*r.Items)
		in.Items = &items
	}
	return in
}

func toItemInputs(items []ServiceOrderItemRequest) []usecase.ServiceOrderItemInput {
	out := make([]usecase.ServiceOrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, it.toInput())
	}
	return out
}
