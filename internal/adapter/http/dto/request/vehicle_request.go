package request

import "oficina_xpto/internal/usecase"

type CreateVehicleRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Brand    string `json:"brand" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Color    string `json:"color"`
	Chassis  string `json:"chassis"`
	Mileage  int    `json:"mileage"`
	ClientID string `json:"client_id" binding:"required"`
}

func (r CreateVehicleRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		Plate:    r.Plate,
		Model:    r.Model,
		Brand:    r.Brand,
		Year:     r.Year,
		Color:    r.Color,
		Chassis:  r.Chassis,
		Mileage:  r.Mileage,
		ClientID: r.ClientID,
	}
}

// UpdateVehicleRequest carries a partial update; absent fields keep the
// stored value.
type UpdateVehicleRequest struct {
	Plate    *string `json:"plate"`
	Model    *string `json:"model"`
	Brand    *string `json:"brand"`
	Year     *int    `json:"year"`
	Color    *string `json:"color"`
	Chassis  *string `json:"chassis"`
	Mileage  *int    `json:"mileage"`
	ClientID *string `json:"client_id"`
}

func (r UpdateVehicleRequest) ToInput() usecase.UpdateVehicleInput {
	return usecase.UpdateVehicleInput{
		Plate:    r.Plate,
		Model:    r.Model,
		Brand:    r.Brand,
		Year:     r.Year,
		Color:    r.Color,
		Chassis:  r.Chassis,
		Mileage:  r.Mileage,
		ClientID: r.ClientID,
	}
}
