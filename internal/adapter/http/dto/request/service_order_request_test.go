package request

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestCreateServiceOrderRequest_ToInput(t *testing.T) {
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	r := CreateServiceOrderRequest{
		ClientID:  "c-1",
		VehicleID: "v-1",
		Status:    "IN_PROGRESS",
		EntryDate: &entry,
		Items: []ServiceOrderItemRequest{
			{Description: "Troca de oleo", Quantity: 1, UnitPrice: 150, Type: "SERVICE"},
			{ID: "i-2", Description: "Filtro de oleo", Quantity: 2, UnitPrice: 25, Type: "PART"},
		},
		Observations: "Cliente aguarda na loja",
	}

	in := r.ToInput()
	if in.ClientID != "c-1" || in.VehicleID != "v-1" {
		t.Fatalf("unexpected ids: %+v", in)
	}
	if in.Status != entities.OrderStatusInProgress {
		t.Fatalf("expected IN_PROGRESS status, got %q", in.Status)
	}
	if !in.EntryDate.Equal(entry) {
		t.Fatalf("unexpected entry date: %v", in.EntryDate)
	}
	if in.ExitDate != nil {
		t.Fatalf("expected nil exit date, got %v", in.ExitDate)
	}
	if len(in.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(in.Items))
	}
	if in.Items[0].Type != entities.ItemTypeService || in.Items[1].Type != entities.ItemTypePart {
		t.Fatalf("unexpected item types: %+v", in.Items)
	}
	if in.Items[1].ID != "i-2" || in.Items[1].Quantity != 2 || in.Items[1].UnitPrice != 25 {
		t.Fatalf("unexpected second item: %+v", in.Items[1])
	}
	if in.Observations != "Cliente aguarda na loja" {
		t.Fatalf("unexpected observations: %q", in.Observations)
	}
}

func TestCreateServiceOrderRequest_ToInput_NoEntryDate(t *testing.T) {
	r := CreateServiceOrderRequest{ClientID: "c-1", VehicleID: "v-1"}
	in := r.ToInput()
	if !in.EntryDate.IsZero() {
		t.Fatalf("expected zero entry date, got %v", in.EntryDate)
	}
}

func TestUpdateServiceOrderRequest_ToInput(t *testing.T) {
	r := UpdateServiceOrderRequest{}
	in := r.ToInput()
	if in.ClientID != nil || in.VehicleID != nil || in.Status != nil || in.Items != nil {
		t.Fatalf("expected all-nil input, got %+v", in)
	}

	status := "COMPLETED"
	obs := "Pronto para retirada"
	items := []ServiceOrderItemRequest{
		{Description: "Alinhamento", Quantity: 1, UnitPrice: 120, Type: "SERVICE"},
	}
	r2 := UpdateServiceOrderRequest{Status: &status, Items: &items, Observations: &obs}
	in2 := r2.ToInput()
	if in2.Status == nil || *in2.Status != entities.OrderStatusCompleted {
		t.Fatalf("unexpected status: %+v", in2.Status)
	}
	if in2.Items == nil || len(*in2.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", in2.Items)
	}
	if (*in2.Items)[0].Description != "Alinhamento" {
		t.Fatalf("unexpected item: %+v", (*in2.Items)[0])
	}
	if in2.Observations == nil || *in2.Observations != obs {
		t.Fatalf("unexpected observations: %+v", in2.Observations)
	}
}
