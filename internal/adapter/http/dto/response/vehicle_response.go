package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
	Year      int       `json:"year"`
	Color     string    `json:"color"`
	Chassis   string    `json:"chassis,omitempty"`
	Mileage   int       `json:"mileage"`
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		Brand:     v.Brand,
		Year:      v.Year,
		Color:     v.Color,
		Chassis:   v.Chassis,
		Mileage:   v.Mileage,
		ClientID:  v.ClientID,
		CreatedAt: v.CreatedAt,
	}
}

func FromVehicles(vehicles []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return out
}
