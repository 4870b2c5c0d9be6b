package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newVehicleMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIVehicleRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIIDGenerator) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIVehicleRepository(ctrl),
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		mock_interfaces.NewMockIIDGenerator(ctrl)
}

func TestVehicleUseCase_Create(t *testing.T) {
	input := CreateVehicleInput{
		Plate:    " abc-1234 ",
		Model:    "Onix",
		Brand:    "Chevrolet",
		Year:     2020,
		Color:    "Prata",
		Mileage:  45000,
		ClientID: "c-1",
	}

	t.Run("client must exist", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), input)
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "client_id" {
			t.Fatalf("expected client_id violation, got %q", vErr.Field)
		}
	})

	t.Run("success normalizes the plate", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		ids.EXPECT().NewID().Return("v-1")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Plate != "ABC-1234" {
					t.Fatalf("expected normalized plate, got %q", v.Plate)
				}
				if v.ID != "v-1" || v.CreatedAt.IsZero() {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				return v, nil
			},
		)

		res, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Plate != "ABC-1234" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestVehicleUseCase_ListByClientID(t *testing.T) {
	t.Run("empty client id", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		_, err := uc.ListByClientID(context.Background(), " ")
		if !errors.Is(err, ErrEmptyID) {
			t.Fatalf("expected ErrEmptyID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		expected := []entities.Vehicle{{ID: "v-1", ClientID: "c-1"}}
		repo.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(expected, nil)

		res, err := uc.ListByClientID(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "v-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestVehicleUseCase_Delete(t *testing.T) {
	t.Run("blocked while orders reference the vehicle", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1"}, nil)
		orders.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return([]entities.ServiceOrder{{ID: "o-1", VehicleID: "v-1"}}, nil)

		err := uc.Delete(context.Background(), "v-1")
		var iErr *entities.IntegrityError
		if !errors.As(err, &iErr) {
			t.Fatalf("expected IntegrityError, got %v", err)
		}
	})

	t.Run("success with no dependents", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1"}, nil)
		orders.EXPECT().ListByVehicleID(gomock.Any(), "v-1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "v-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "v-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, clients, orders, ids := newVehicleMocks(t)
		defer ctrl.Finish()
		uc := NewVehicleUseCase(repo, clients, orders, ids)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, nil)

		err := uc.Delete(context.Background(), "v-1")
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
