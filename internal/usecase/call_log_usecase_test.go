package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	mock_interfaces "github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCallLogUseCase_Log(t *testing.T) {
	t.Run("missing lead or agent", func(t *testing.T) {
		uc := NewCallLogUseCase(nil, nil)
		_, err := uc.Log(context.Background(), entities.CallLog{LeadID: "lead-1"})
		if !errors.Is(err, ErrInvalidCallInput) {
			t.Fatalf("expected ErrInvalidCallInput, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewCallLogUseCase(nil, nil)
		_, err := uc.Log(context.Background(), entities.CallLog{LeadID: "lead-1", AgentID: "agent-1", Status: "voicemail"})
		if !errors.Is(err, ErrInvalidCallStatus) {
			t.Fatalf("expected ErrInvalidCallStatus, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewCallLogUseCase(nil, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lead{}, nil)

		_, err := uc.Log(context.Background(), entities.CallLog{LeadID: "ghost", AgentID: "agent-1", Status: entities.CallStatusConnected})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("defaults called_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICallLogRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewCallLogUseCase(repo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CallLog) (entities.CallLog, error) {
				if c.ID == "" || c.CalledAt.IsZero() || c.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps, got %+v", c)
				}
				return c, nil
			})

		if _, err := uc.Log(context.Background(), entities.CallLog{LeadID: "lead-1", AgentID: "agent-1", Status: entities.CallStatusNoAnswer}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCallLogUseCase_Lists(t *testing.T) {
	t.Run("blank lead id", func(t *testing.T) {
		uc := NewCallLogUseCase(nil, nil)
		if _, err := uc.ListByLeadID(context.Background(), " "); !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("blank agent id", func(t *testing.T) {
		uc := NewCallLogUseCase(nil, nil)
		if _, err := uc.ListByAgentID(context.Background(), " "); !errors.Is(err, ErrInvalidAgentID) {
			t.Fatalf("expected ErrInvalidAgentID, got %v", err)
		}
	})

	t.Run("by agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICallLogRepository(ctrl)
		uc := NewCallLogUseCase(repo, nil)

		repo.EXPECT().ListByAgentID(gomock.Any(), "agent-1").Return([]entities.CallLog{{ID: "c1"}}, nil)

		got, err := uc.ListByAgentID(context.Background(), "agent-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("expected 1 call, got %v / %v", got, err)
		}
	})
}
