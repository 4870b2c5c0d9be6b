package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryUseCase_Create(t *testing.T) {
	t.Run("validation error before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewInventoryUseCase(repo, ids)

		_, err := uc.Create(context.Background(), CreateInventoryItemInput{Name: "Filtro de Óleo", Category: "Filtros"})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "code" {
			t.Fatalf("expected code violation, got %q", vErr.Field)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewInventoryUseCase(repo, ids)

		ids.EXPECT().NewID().Return("i-1")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryItem{})).DoAndReturn(
			func(_ context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
				if i.ID != "i-1" || i.CreatedAt.IsZero() {
					t.Fatalf("unexpected item: %+v", i)
				}
				return i, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateInventoryItemInput{
			Code:      "PF-001",
			Name:      "Filtro de Óleo",
			Category:  "Filtros",
			CostPrice: 15,
			SalePrice: 35,
			Stock:     8,
			MinStock:  10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StockStatus() != entities.StockStatusLow {
			t.Fatalf("expected low stock, got %s", res.StockStatus())
		}
	})
}

func TestInventoryUseCase_Update(t *testing.T) {
	t.Run("partial update merges over stored item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewInventoryUseCase(repo, ids)

		stored := entities.InventoryItem{ID: "i-1", Code: "PF-001", Name: "Filtro de Óleo", Category: "Filtros", Stock: 8, MinStock: 10}
		repo.EXPECT().GetByID(gomock.Any(), "i-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.InventoryItem{})).DoAndReturn(
			func(_ context.Context, i entities.InventoryItem) (entities.InventoryItem, error) {
				if i.Stock != 20 {
					t.Fatalf("expected stock 20, got %d", i.Stock)
				}
				if i.Code != "PF-001" {
					t.Fatalf("expected untouched code, got %q", i.Code)
				}
				return i, nil
			},
		)

		stock := 20
		_, err := uc.Update(context.Background(), "i-1", UpdateInventoryItemInput{Stock: &stock})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInventoryRepository(ctrl)
		ids := mock_interfaces.NewMockIIDGenerator(ctrl)
		uc := NewInventoryUseCase(repo, ids)

		repo.EXPECT().GetByID(gomock.Any(), "i-9").Return(entities.InventoryItem{}, nil)

		_, err := uc.Update(context.Background(), "i-9", UpdateInventoryItemInput{})
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
