package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"micsa_os/internal/domain/entities"
	mock_interfaces "micsa_os/internal/usecase/interfaces/mocks"
)

func TestProjectUseCase_Promote(t *testing.T) {
	storedQuote := entities.Quote{
		ID: "q-1",
		Request: entities.QuoteRequest{
			ClientName:  "Acme Industrial",
			ProjectName: "Planta Norte",
			Location:    "Monterrey",
		},
	}

	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Promote(context.Background(), "   ", "")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("quote repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.Promote(context.Background(), "q-1", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(nil, quoteRepo)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Promote(context.Background(), "q-1", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success with quote project name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" || p.QuoteID != "q-1" || p.Name != "Planta Norte" || p.ClientName != "Acme Industrial" {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Status != entities.ProjectStatusActive {
					t.Fatalf("expected ACTIVE, got %s", p.Status)
				}
				if p.PendingSignatures != 0 {
					t.Fatalf("expected zero pending signatures, got %d", p.PendingSignatures)
				}
				return p, nil
			},
		)

		p, err := uc.Promote(context.Background(), " q-1 ", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("name override wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewProjectUseCase(repo, quoteRepo)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(storedQuote, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Name != "Fase 2" {
					t.Fatalf("expected override name, got %q", p.Name)
				}
				return p, nil
			},
		)

		if _, err := uc.Promote(context.Background(), "q-1", "Fase 2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)

		p, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-1" {
			t.Fatalf("unexpected result: %+v", p)
		}
	})
}

func TestProjectUseCase_Close(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.Close(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Close(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, errors.New("db"))

		_, err := uc.Close(context.Background(), "p-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		now := time.Now().UTC()
		closed := entities.Project{ID: "p-1", Status: entities.ProjectStatusClosed, ClosedAt: &now}
		repo.EXPECT().Close(gomock.Any(), "p-1", gomock.Any()).Return(closed, nil)

		p, err := uc.Close(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusClosed || p.ClosedAt == nil {
			t.Fatalf("unexpected result: %+v", p)
		}
	})

	t.Run("refused and project missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Close(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.Close(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("refused because already closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Close(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusClosed}, nil)

		_, err := uc.Close(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectAlreadyClosed) {
			t.Fatalf("expected ErrProjectAlreadyClosed, got %v", err)
		}
	})

	t.Run("refused because signatures pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo, nil)
		repo.EXPECT().Close(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID:                "p-1",
			Status:            entities.ProjectStatusActive,
			PendingSignatures: 2,
		}, nil)

		_, err := uc.Close(context.Background(), "p-1")
		var blocked *ClosureBlockedError
		if !errors.As(err, &blocked) {
			t.Fatalf("expected *ClosureBlockedError, got %v", err)
		}
		if blocked.PendingSignatures != 2 {
			t.Fatalf("expected 2 pending, got %d", blocked.PendingSignatures)
		}
	})
}
