package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidChargePayload        = errors.New("invalid charge payload")
)

type CreateTransactionInput struct {
	Description    string
	Type           entities.TransactionType
	Amount         float64
	Date           time.Time
	Category       string
	PaymentMethod  entities.PaymentMethod
	Status         entities.TransactionStatus
	RelatedOrderID string
}

// UpdateTransactionInput is a partial update: nil fields keep the stored
// value.
type UpdateTransactionInput struct {
	Description    *string
	Type           *entities.TransactionType
	Amount         *float64
	Date           *time.Time
	Category       *string
	PaymentMethod  *entities.PaymentMethod
	Status         *entities.TransactionStatus
	RelatedOrderID *string
}

// ChargeOrderInput drives the optional Mercado Pago charge of a service
// order. Payload is forwarded to the gateway after being enriched with the
// order linkage; the charged amount always comes from the stored order.
type ChargeOrderInput struct {
	PaymentMethod entities.PaymentMethod
	Payload       json.RawMessage
}

// ITransactionUseCase exposes the financial operations consumed by the HTTP
// layer.

type ITransactionUseCase interface {
	List(ctx context.Context) ([]entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	Create(ctx context.Context, in CreateTransactionInput) (entities.Transaction, error)
	Update(ctx context.Context, id string, in UpdateTransactionInput) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
	ChargeOrder(ctx context.Context, orderID string, in ChargeOrderInput) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo      interfaces.ITransactionRepository
	orderRepo interfaces.IServiceOrderRepository
	gateway   interfaces.IPaymentGateway
	ids       interfaces.IIDGenerator
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository, orderRepo interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway, ids interfaces.IIDGenerator) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, ids: ids}
}

func (u *TransactionUseCase) List(ctx context.Context) ([]entities.Transaction, error) {
	return u.repo.List(ctx)
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrEmptyID
	}

	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, entities.NewNotFoundError("transaction", id)
	}
	return tx, nil
}

func (u *TransactionUseCase) Create(ctx context.Context, in CreateTransactionInput) (entities.Transaction, error) {
	status := in.Status
	if status == "" {
		status = entities.TransactionStatusPending
	}

	tx := entities.Transaction{
		Description:    strings.TrimSpace(in.Description),
		Type:           in.Type,
		Amount:         in.Amount,
		Date:           in.Date,
		Category:       strings.TrimSpace(in.Category),
		PaymentMethod:  in.PaymentMethod,
		Status:         status,
		RelatedOrderID: strings.TrimSpace(in.RelatedOrderID),
	}
	if err := tx.Validate(); err != nil {
		return entities.Transaction{}, err
	}

	tx.ID = u.ids.NewID()
	tx.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, tx)
}

func (u *TransactionUseCase) Update(ctx context.Context, id string, in UpdateTransactionInput) (entities.Transaction, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}

	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Type != nil {
		current.Type = *in.Type
	}
	if in.Amount != nil {
		current.Amount = *in.Amount
	}
	if in.Date != nil {
		current.Date = *in.Date
	}
	if in.Category != nil {
		current.Category = strings.TrimSpace(*in.Category)
	}
	if in.PaymentMethod != nil {
		current.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		current.Status = *in.Status
	}
	if in.RelatedOrderID != nil {
		current.RelatedOrderID = strings.TrimSpace(*in.RelatedOrderID)
	}

	if err := current.Validate(); err != nil {
		return entities.Transaction{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Transaction{}, err
	}
	if updated.ID == "" {
		return entities.Transaction{}, entities.NewNotFoundError("transaction", id)
	}
	return updated, nil
}

func (u *TransactionUseCase) Delete(ctx context.Context, id string) error {
	tx, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := u.repo.Delete(ctx, tx.ID)
	if err != nil {
		return err
	}
	if !removed {
		return entities.NewNotFoundError("transaction", id)
	}
	return nil
}

// ChargeOrder processes a payment for a service order through the gateway
// and records the resulting COMPLETED income transaction linked to the
// order. The charged amount is the stored order total, never the payload.
func (u *TransactionUseCase) ChargeOrder(ctx context.Context, orderID string, in ChargeOrderInput) (entities.Transaction, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[charge][usecase] start order_id=%q payload_len=%d", orderID, len(in.Payload))
	if orderID == "" {
		return entities.Transaction{}, ErrEmptyID
	}
	if u.gateway == nil {
		log.Printf("[charge][usecase] gateway not configured order_id=%s", orderID)
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[charge][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}
	if order.ID == "" {
		log.Printf("[charge][usecase] order not found order_id=%s", orderID)
		return entities.Transaction{}, entities.NewNotFoundError("service order", orderID)
	}

	payload := in.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[charge][usecase] invalid payload order_id=%s", orderID)
		return entities.Transaction{}, ErrInvalidChargePayload
	}

	// Mercado Pago uses external_reference to reconcile events; the amount
	// source of truth is the stored order.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = order.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de Serviço %s", order.Number)
		}
		reqMap["transaction_amount"] = order.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[charge][usecase] calling payment gateway order_id=%s amount=%.2f", orderID, order.TotalAmount)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[charge][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[charge][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	return u.Create(ctx, CreateTransactionInput{
		Description:    fmt.Sprintf("Recebimento %s", order.Number),
		Type:           entities.TransactionTypeIncome,
		Amount:         order.TotalAmount,
		Date:           time.Now().UTC(),
		Category:       "Serviços",
		PaymentMethod:  in.PaymentMethod,
		Status:         entities.TransactionStatusCompleted,
		RelatedOrderID: order.ID,
	})
}
