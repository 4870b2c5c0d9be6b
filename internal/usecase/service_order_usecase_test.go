package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	repo     *mock_interfaces.MockIServiceOrderRepository
	clients  *mock_interfaces.MockIClientRepository
	vehicles *mock_interfaces.MockIVehicleRepository
	ids      *mock_interfaces.MockIIDGenerator
}

func newOrderMocks(t *testing.T) (*gomock.Controller, orderMocks) {
	ctrl := gomock.NewController(t)
	return ctrl, orderMocks{
		repo:     mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		vehicles: mock_interfaces.NewMockIVehicleRepository(ctrl),
		ids:      mock_interfaces.NewMockIIDGenerator(ctrl),
	}
}

func orderInput() CreateServiceOrderInput {
	return CreateServiceOrderInput{
		ClientID:  "c-1",
		VehicleID: "v-1",
		Items: []ServiceOrderItemInput{
			{Description: "Troca de óleo", Quantity: 1, UnitPrice: 150, Type: entities.ItemTypeService},
			{Description: "Filtro de óleo", Quantity: 1, UnitPrice: 50, Type: entities.ItemTypePart},
		},
	}
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("empty items rejected", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		in := orderInput()
		in.Items = nil

		_, err := uc.Create(context.Background(), in)
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "items" {
			t.Fatalf("expected items violation, got %q", vErr.Field)
		}
	})

	t.Run("vehicle must belong to the client", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.ids.EXPECT().NewID().Return("item-id").AnyTimes()
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", ClientID: "c-2"}, nil)

		_, err := uc.Create(context.Background(), orderInput())
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "vehicle_id" {
			t.Fatalf("expected vehicle_id violation, got %q", vErr.Field)
		}
	})

	t.Run("success defaults, number and total", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.ids.EXPECT().NewID().Return("generated").AnyTimes()
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", ClientID: "c-1"}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any()).Return(int64(5), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Number != "OS00005" {
					t.Fatalf("expected OS00005, got %q", o.Number)
				}
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected default status, got %s", o.Status)
				}
				if o.TotalAmount != 200 {
					t.Fatalf("expected total 200, got %v", o.TotalAmount)
				}
				if o.EntryDate.IsZero() || o.CreatedAt.IsZero() {
					t.Fatalf("expected dates to be set")
				}
				for _, it := range o.Items {
					if it.ID == "" {
						t.Fatalf("expected item ids to be assigned")
					}
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), orderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Number != "OS00005" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("sequence error aborts before create", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.ids.EXPECT().NewID().Return("generated").AnyTimes()
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", ClientID: "c-1"}, nil)
		m.repo.EXPECT().NextSequence(gomock.Any()).Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), orderInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	stored := entities.ServiceOrder{
		ID:        "o-1",
		Number:    "OS00001",
		ClientID:  "c-1",
		VehicleID: "v-1",
		Status:    entities.OrderStatusPending,
		Items: []entities.ServiceOrderItem{
			{ID: "item-1", Description: "Troca de óleo", Quantity: 1, UnitPrice: 150, Type: entities.ItemTypeService},
		},
		TotalAmount: 150,
	}

	t.Run("replacing items recomputes the total", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.ids.EXPECT().NewID().Return("item-2").AnyTimes()
		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", ClientID: "c-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.TotalAmount != 359.6 {
					t.Fatalf("expected recomputed total 359.6, got %v", o.TotalAmount)
				}
				if o.Number != "OS00001" {
					t.Fatalf("number must not change, got %q", o.Number)
				}
				return o, nil
			},
		)

		items := []ServiceOrderItemInput{
			{Description: "Pastilha de freio", Quantity: 4, UnitPrice: 89.9, Type: entities.ItemTypePart},
		}
		_, err := uc.Update(context.Background(), "o-1", UpdateServiceOrderInput{Items: &items})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status change keeps items and total", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(stored, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", ClientID: "c-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.OrderStatusInProgress {
					t.Fatalf("expected status change, got %s", o.Status)
				}
				if o.TotalAmount != 150 || len(o.Items) != 1 {
					t.Fatalf("expected untouched items, got %+v", o)
				}
				return o, nil
			},
		)

		status := entities.OrderStatusInProgress
		_, err := uc.Update(context.Background(), "o-1", UpdateServiceOrderInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.repo.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.ServiceOrder{}, nil)

		_, err := uc.Update(context.Background(), "o-9", UpdateServiceOrderInput{})
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		m.repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "o-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "o-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		ctrl, m := newOrderMocks(t)
		defer ctrl.Finish()
		uc := NewServiceOrderUseCase(m.repo, m.clients, m.vehicles, m.ids)

		err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrEmptyID) {
			t.Fatalf("expected ErrEmptyID, got %v", err)
		}
	})
}
