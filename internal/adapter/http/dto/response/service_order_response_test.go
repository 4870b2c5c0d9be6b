package response

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	exit := now.Add(48 * time.Hour)
	o := entities.ServiceOrder{
		ID:        "o-1",
		Number:    "OS00007",
		ClientID:  "c-1",
		VehicleID: "v-1",
		Status:    entities.OrderStatusInProgress,
		EntryDate: now,
		ExitDate:  &exit,
		Items: []entities.ServiceOrderItem{
			{ID: "i-1", Description: "Troca de oleo", Quantity: 1, UnitPrice: 150, Type: entities.ItemTypeService},
			{ID: "i-2", Description: "Filtro de oleo", Quantity: 2, UnitPrice: 25, Type: entities.ItemTypePart},
		},
		Observations: "Retirada agendada",
		TotalAmount:  200,
		CreatedAt:    now,
	}

	res := FromServiceOrder(o)
	if res.ID != "o-1" || res.Number != "OS00007" {
		t.Fatalf("unexpected identifiers: %+v", res)
	}
	if res.Status != "IN_PROGRESS" || res.StatusLabel != "Em Andamento" {
		t.Fatalf("unexpected status fields: %q %q", res.Status, res.StatusLabel)
	}
	if res.ExitDate == nil || !res.ExitDate.Equal(exit) {
		t.Fatalf("unexpected exit date: %+v", res.ExitDate)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Items[0].Subtotal != 150 || res.Items[1].Subtotal != 50 {
		t.Fatalf("unexpected subtotals: %+v", res.Items)
	}
	if res.Items[1].Type != "PART" {
		t.Fatalf("unexpected item type: %q", res.Items[1].Type)
	}
	if res.TotalAmount != 200 {
		t.Fatalf("unexpected total: %v", res.TotalAmount)
	}
}

func TestFromServiceOrders_Empty(t *testing.T) {
	res := FromServiceOrders(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", res)
	}
}

func TestFromInventoryItem_StockStatus(t *testing.T) {
	now := time.Now().UTC()
	i := entities.InventoryItem{
		ID:        "p-1",
		Code:      "FLT-001",
		Name:      "Filtro de ar",
		Category:  "Filtros",
		CostPrice: 18.5,
		SalePrice: 35,
		Stock:     3,
		MinStock:  5,
		CreatedAt: now,
	}

	res := FromInventoryItem(i)
	if res.StockStatus != "LOW_STOCK" || res.StockStatusLabel != "Estoque Baixo" {
		t.Fatalf("unexpected stock status: %q %q", res.StockStatus, res.StockStatusLabel)
	}

	i.Stock = 0
	res = FromInventoryItem(i)
	if res.StockStatus != "OUT_OF_STOCK" || res.StockStatusLabel != "Sem Estoque" {
		t.Fatalf("unexpected stock status: %q %q", res.StockStatus, res.StockStatusLabel)
	}

	i.Stock = 12
	res = FromInventoryItem(i)
	if res.StockStatus != "ADEQUATE" || res.StockStatusLabel != "Adequado" {
		t.Fatalf("unexpected stock status: %q %q", res.StockStatus, res.StockStatusLabel)
	}
}
