package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid transaction payload", http.StatusBadRequest)

// TransactionHandler handles HTTP requests for financial transactions,
// including charging a service order through the payment gateway.

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	tx, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var payload request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(created))
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var payload request.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(updated))
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ChargeOrder charges the order identified in the path and records the
// resulting income transaction.
func (h *TransactionHandler) ChargeOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[charge][handler] start order_id=%s", orderID)

	var payload request.ChargeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[charge][handler] invalid payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.ChargeOrder(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[charge][handler] failed order_id=%s err=%v", orderID, err)
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] success order_id=%s transaction_id=%s", orderID, created.ID)

	c.JSON(http.StatusCreated, response.FromTransaction(created))
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidChargePayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid charge payload", http.StatusBadRequest)
	default:
		return mapDomainError(err)
	}
}
