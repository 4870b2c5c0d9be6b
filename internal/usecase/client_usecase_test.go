package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClientMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockIVehicleRepository, *mock_interfaces.MockIIDGenerator) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockIVehicleRepository(ctrl),
		mock_interfaces.NewMockIIDGenerator(ctrl)
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrEmptyID) {
			t.Fatalf("expected ErrEmptyID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "c-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.Entity != "client" || nf.ID != "c-1" {
			t.Fatalf("unexpected NotFoundError: %+v", nf)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)

		res, err := uc.GetByID(context.Background(), " c-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "c-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("validation error before persistence", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		_, err := uc.Create(context.Background(), CreateClientInput{Name: "Jo", Email: "a@b.c", Phone: "1198765432", Document: "12345678900"})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "name" {
			t.Fatalf("expected name violation, got %q", vErr.Field)
		}
	})

	t.Run("success assigns id and timestamp", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		ids.EXPECT().NewID().Return("c-1")
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID != "c-1" || c.Name != "João Silva" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateClientInput{
			Name:     "  João Silva  ",
			Email:    "joao.silva@email.com",
			Phone:    "11987654321",
			Document: "12345678900",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "c-1" {
			t.Fatalf("expected generated id, got %q", res.ID)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		stored := entities.Client{ID: "c-1", Name: "João Silva", Email: "joao.silva@email.com", Phone: "11987654321", Document: "12345678900"}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Phone != "11900000000" {
					t.Fatalf("expected updated phone, got %q", c.Phone)
				}
				if c.Name != "João Silva" || c.Email != "joao.silva@email.com" {
					t.Fatalf("expected untouched fields, got %+v", c)
				}
				return c, nil
			},
		)

		phone := "11900000000"
		_, err := uc.Update(context.Background(), "c-1", UpdateClientInput{Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("merged record is revalidated", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		stored := entities.Client{ID: "c-1", Name: "João Silva", Email: "joao.silva@email.com", Phone: "11987654321", Document: "12345678900"}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)

		bad := "not-an-email"
		_, err := uc.Update(context.Background(), "c-1", UpdateClientInput{Email: &bad})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Field != "email" {
			t.Fatalf("expected email violation, got %q", vErr.Field)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("blocked while vehicles reference the client", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		vehicles.EXPECT().ListByClientID(gomock.Any(), "c-1").Return([]entities.Vehicle{{ID: "v-1", ClientID: "c-1"}}, nil)

		err := uc.Delete(context.Background(), "c-1")
		var iErr *entities.IntegrityError
		if !errors.As(err, &iErr) {
			t.Fatalf("expected IntegrityError, got %v", err)
		}
	})

	t.Run("success with no dependents", func(t *testing.T) {
		ctrl, repo, vehicles, ids := newClientMocks(t)
		defer ctrl.Finish()
		uc := NewClientUseCase(repo, vehicles, ids)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		vehicles.EXPECT().ListByClientID(gomock.Any(), "c-1").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
