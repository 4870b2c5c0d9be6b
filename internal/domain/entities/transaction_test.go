package entities

import (
	"errors"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		Description:   "Recebimento OS00001",
		Type:          TransactionTypeIncome,
		Amount:        200,
		Date:          time.Now(),
		Category:      "Serviços",
		PaymentMethod: PaymentMethodPix,
		Status:        TransactionStatusCompleted,
	}
}

func TestTransaction_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validTransaction().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*Transaction)
		field  string
	}{
		{name: "missing description", mutate: func(tx *Transaction) { tx.Description = "" }, field: "description"},
		{name: "unknown type", mutate: func(tx *Transaction) { tx.Type = "TRANSFER" }, field: "type"},
		{name: "zero amount", mutate: func(tx *Transaction) { tx.Amount = 0 }, field: "amount"},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = -10 }, field: "amount"},
		{name: "zero date", mutate: func(tx *Transaction) { tx.Date = time.Time{} }, field: "date"},
		{name: "unknown payment method", mutate: func(tx *Transaction) { tx.PaymentMethod = "CHEQUE" }, field: "payment_method"},
		{name: "unknown status", mutate: func(tx *Transaction) { tx.Status = "PAID" }, field: "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(&tx)

			err := tx.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

func TestTransactionType_Labels(t *testing.T) {
	if got := TransactionTypeIncome.DisplayLabel(); got != "Receita" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := TransactionTypeExpense.DisplayLabel(); got != "Despesa" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestPaymentMethod_Labels(t *testing.T) {
	expected := map[PaymentMethod]string{
		PaymentMethodCash:         "Dinheiro",
		PaymentMethodCreditCard:   "Cartão de Crédito",
		PaymentMethodDebitCard:    "Cartão de Débito",
		PaymentMethodPix:          "Pix",
		PaymentMethodBankTransfer: "Transferência Bancária",
		PaymentMethodBankSlip:     "Boleto",
	}
	for method, label := range expected {
		if !method.Valid() {
			t.Fatalf("expected %s to be valid", method)
		}
		if got := method.DisplayLabel(); got != label {
			t.Fatalf("expected label %q for %s, got %q", label, method, got)
		}
	}
}
