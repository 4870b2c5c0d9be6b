package request

import (
	"encoding/json"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
)

type CreateTransactionRequest struct {
	Description    string    `json:"description" binding:"required"`
	Type           string    `json:"type" binding:"required"`
	Amount         float64   `json:"amount" binding:"required"`
	Date           time.Time `json:"date" binding:"required"`
	Category       string    `json:"category"`
	PaymentMethod  string    `json:"payment_method" binding:"required"`
	Status         string    `json:"status"`
	RelatedOrderID string    `json:"related_order_id"`
}

func (r CreateTransactionRequest) ToInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		Description:    r.Description,
		Type:           entities.TransactionType(r.Type),
		Amount:         r.Amount,
		Date:           r.Date,
		Category:       r.Category,
		PaymentMethod:  entities.PaymentMethod(r.PaymentMethod),
		Status:         entities.TransactionStatus(r.Status),
		RelatedOrderID: r.RelatedOrderID,
	}
}

// UpdateTransactionRequest carries a partial update; absent fields keep the
// stored value.
type UpdateTransactionRequest struct {
	Description    *string    `json:"description"`
	Type           *string    `json:"type"`
	Amount         *float64   `json:"amount"`
	Date           *time.Time `json:"date"`
	Category       *string    `json:"category"`
	PaymentMethod  *string    `json:"payment_method"`
	Status         *string    `json:"status"`
	RelatedOrderID *string    `json:"related_order_id"`
}

func (r UpdateTransactionRequest) ToInput() usecase.UpdateTransactionInput {
	in := usecase.UpdateTransactionInput{
		Description:    r.Description,
		Amount:         r.Amount,
		Date:           r.Date,
		Category:       r.Category,
		RelatedOrderID: r.RelatedOrderID,
	}
	if r.Type != nil {
		t := entities.TransactionType(*r.Type)
		in.Type = &t
	}
	if r.PaymentMethod != nil {
		m := entities.PaymentMethod(*r.PaymentMethod)
		in.PaymentMethod = &m
	}
	if r.Status != nil {
		s := entities.TransactionStatus(*r.Status)
		in.Status = &s
	}
	return in
}

// ChargeOrderRequest drives the Mercado Pago charge of a service order.
// Payload is forwarded to the gateway as-is (card token, payer, installment
// data); the amount always comes from the stored order.
type ChargeOrderRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Payload       json.RawMessage `json:"payload"`
}

func (r ChargeOrderRequest) ToInput() usecase.ChargeOrderInput {
	return usecase.ChargeOrderInput{
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Payload:       r.Payload,
	}
}
