package request

import "oficina_xpto/internal/usecase"

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Document string `json:"document" binding:"required"`
	Address  string `json:"address"`
}

func (r CreateClientRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
		Address:  r.Address,
	}
}

// UpdateClientRequest carries a partial update; absent fields keep the
// stored value.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Address  *string `json:"address"`
}

func (r UpdateClientRequest) ToInput() usecase.UpdateClientInput {
	return usecase.UpdateClientInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Document: r.Document,
		Address:  r.Address,
	}
}
