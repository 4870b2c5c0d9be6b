package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type TransactionResponse struct {
	ID                 string    `json:"id"`
	Description        string    `json:"description"`
	Type               string    `json:"type"`
	TypeLabel          string    `json:"type_label"`
	Amount             float64   `json:"amount"`
	Date               time.Time `json:"date"`
	Category           string    `json:"category"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	Status             string    `json:"status"`
	RelatedOrderID     string    `json:"related_order_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 t.ID,
		Description:        t.Description,
		Type:               string(t.Type),
		TypeLabel:          t.Type.DisplayLabel(),
		Amount:             t.Amount,
		Date:               t.Date,
		Category:           t.Category,
		PaymentMethod:      string(t.PaymentMethod),
		PaymentMethodLabel: t.PaymentMethod.DisplayLabel(),
		Status:             string(t.Status),
		RelatedOrderID:     t.RelatedOrderID,
		CreatedAt:          t.CreatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}
