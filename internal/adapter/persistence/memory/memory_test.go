package memory

import (
	"context"
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestClientMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClientMemoryRepository()

	t.Run("list preserves insertion order", func(t *testing.T) {
		for _, id := range []string{"c-1", "c-2", "c-3"} {
			if _, err := repo.Create(ctx, entities.Client{ID: id}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		list, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 3 || list[0].ID != "c-1" || list[2].ID != "c-3" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("get absent returns zero value", func(t *testing.T) {
		c, err := repo.GetByID(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Fatalf("expected zero value, got %+v", c)
		}
	})

	t.Run("update absent returns zero value", func(t *testing.T) {
		c, err := repo.Update(ctx, entities.Client{ID: "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Fatalf("expected zero value, got %+v", c)
		}
	})

	t.Run("delete reports removal and keeps order intact", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "c-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !removed {
			t.Fatalf("expected removal")
		}

		removed, err = repo.Delete(ctx, "c-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed {
			t.Fatalf("expected second delete to report false")
		}

		list, _ := repo.List(ctx)
		if len(list) != 2 || list[0].ID != "c-1" || list[1].ID != "c-3" {
			t.Fatalf("unexpected order after delete: %+v", list)
		}
	})
}

func TestVehicleMemoryRepository_ListByClientID(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleMemoryRepository()

	vehicles := []entities.Vehicle{
		{ID: "v-1", ClientID: "c-1"},
		{ID: "v-2", ClientID: "c-2"},
		{ID: "v-3", ClientID: "c-1"},
	}
	for _, v := range vehicles {
		if _, err := repo.Create(ctx, v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := repo.ListByClientID(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "v-1" || list[1].ID != "v-3" {
		t.Fatalf("unexpected result: %+v", list)
	}

	list, err = repo.ListByClientID(ctx, "c-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty result, got %+v", list)
	}
}

func TestServiceOrderMemoryRepository_NextSequence(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderMemoryRepository()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.NextSequence(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}

	// Deletes never release numbers.
	if _, err := repo.Create(ctx, entities.ServiceOrder{ID: "o-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Delete(ctx, "o-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.NextSequence(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected 4 after delete, got %d", got)
	}
}

func TestTransactionMemoryRepository_ListByType(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionMemoryRepository()

	txs := []entities.Transaction{
		{ID: "t-1", Type: entities.TransactionTypeIncome},
		{ID: "t-2", Type: entities.TransactionTypeExpense},
		{ID: "t-3", Type: entities.TransactionTypeIncome},
	}
	for _, tx := range txs {
		if _, err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := repo.ListByType(ctx, entities.TransactionTypeIncome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "t-1" || list[1].ID != "t-3" {
		t.Fatalf("unexpected result: %+v", list)
	}
}
