package entities

import "time"

// TransactionType tags a financial movement as income or expense.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeIncome:  "Receita",
	TransactionTypeExpense: "Despesa",
}

func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

func (t TransactionType) DisplayLabel() string {
	return transactionTypeLabels[t]
}

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix          PaymentMethod = "PIX"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodBankSlip     PaymentMethod = "BANK_SLIP"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:         "Dinheiro",
	PaymentMethodCreditCard:   "Cartão de Crédito",
	PaymentMethodDebitCard:    "Cartão de Débito",
	PaymentMethodPix:          "Pix",
	PaymentMethodBankTransfer: "Transferência Bancária",
	PaymentMethodBankSlip:     "Boleto",
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

func (m PaymentMethod) DisplayLabel() string {
	return paymentMethodLabels[m]
}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCanceled  TransactionStatus = "CANCELED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCanceled:
		return true
	}
	return false
}

// Transaction is a financial movement of the shop. RelatedOrderID is an
// optional weak reference to the service order that originated it.
type Transaction struct {
	ID             string            `json:"id"`
	Description    string            `json:"description"`
	Type           TransactionType   `json:"type"`
	Amount         float64           `json:"amount"`
	Date           time.Time         `json:"date"`
	Category       string            `json:"category"`
	PaymentMethod  PaymentMethod     `json:"payment_method"`
	Status         TransactionStatus `json:"status"`
	RelatedOrderID string            `json:"related_order_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Validate checks the field constraints and returns the first violation.
func (t Transaction) Validate() error {
	if t.Description == "" {
		return NewValidationError("description", "is required")
	}
	if !t.Type.Valid() {
		return NewValidationError("type", "must be INCOME or EXPENSE")
	}
	if t.Amount <= 0 {
		return NewValidationError("amount", "must be greater than zero")
	}
	if t.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	if !t.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "is not a valid payment method")
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "is not a valid status")
	}
	return nil
}
