package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	mock_interfaces "github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Lead{Phone: "9876543210"})
		if !errors.Is(err, ErrInvalidLeadInput) {
			t.Fatalf("expected ErrInvalidLeadInput, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Lead{Name: "Asha"})
		if !errors.Is(err, ErrInvalidLeadInput) {
			t.Fatalf("expected ErrInvalidLeadInput, got %v", err)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Lead{Name: "Asha", Phone: "9876543210", Stage: "parked"})
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("unknown temperature", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Lead{Name: "Asha", Phone: "9876543210", Temperature: "lukewarm"})
		if !errors.Is(err, ErrInvalidTemperature) {
			t.Fatalf("expected ErrInvalidTemperature, got %v", err)
		}
	})

	t.Run("defaults applied and audit recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		activityRepo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, activityRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" {
					t.Fatalf("expected generated id")
				}
				if l.Stage != entities.LeadStageNew {
					t.Fatalf("expected default stage new, got %s", l.Stage)
				}
				if l.Temperature != entities.TemperatureWarm {
					t.Fatalf("expected default temperature warm, got %s", l.Temperature)
				}
				if l.CreatedAt.IsZero() || l.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps to be set")
				}
				return l, nil
			})
		activityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ActivityLog{}, nil)

		created, err := uc.Create(context.Background(), entities.Lead{Name: "  Asha  ", Phone: " 9876543210 ", Source: "website"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Asha" || created.Phone != "9876543210" {
			t.Fatalf("expected trimmed fields, got %q / %q", created.Name, created.Phone)
		}
	})

	t.Run("audit failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		activityRepo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, activityRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil })
		activityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ActivityLog{}, errors.New("dynamo down"))

		if _, err := uc.Create(context.Background(), entities.Lead{Name: "Asha", Phone: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeadUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, err := uc.GetByID(context.Background(), "lead-1")
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("hydrates visits calls and deals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		visitRepo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		callRepo := mock_interfaces.NewMockICallLogRepository(ctrl)
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewLeadUseCase(repo, visitRepo, callRepo, dealRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Name: "Asha", Phone: "9876543210"}, nil)
		visitRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.SiteVisit{{ID: "v1", LeadID: "lead-1"}}, nil)
		callRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.CallLog{{ID: "c1", LeadID: "lead-1"}}, nil)
		dealRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.Deal{{ID: "d1", LeadID: "lead-1"}}, nil)

		l, err := uc.GetByID(context.Background(), "lead-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(l.SiteVisits) != 1 || len(l.CallLogs) != 1 || len(l.Deals) != 1 {
			t.Fatalf("expected hydrated collections, got %d/%d/%d", len(l.SiteVisits), len(l.CallLogs), len(l.Deals))
		}
	})
}

func TestLeadUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	uc := NewLeadUseCase(repo, nil, nil, nil, nil)

	leads := []entities.Lead{
		{ID: "l1", Stage: entities.LeadStageNew, Temperature: entities.TemperatureHot, AssignedTo: "agent-1"},
		{ID: "l2", Stage: entities.LeadStageNegotiation, Temperature: entities.TemperatureHot, AssignedTo: "agent-2"},
		{ID: "l3", Stage: entities.LeadStageNew, Temperature: entities.TemperatureCold, AssignedTo: "agent-1"},
	}
	repo.EXPECT().List(gomock.Any()).Return(leads, nil).Times(3)

	got, err := uc.List(context.Background(), LeadFilter{Stage: entities.LeadStageNew})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 leads for stage filter, got %d", len(got))
	}

	got, err = uc.List(context.Background(), LeadFilter{Temperature: entities.TemperatureHot, AssignedTo: "agent-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "l2" {
		t.Fatalf("expected only l2, got %v", got)
	}

	got, err = uc.List(context.Background(), LeadFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected all leads with empty filter, got %d", len(got))
	}
}

func TestLeadUseCase_Update(t *testing.T) {
	t.Run("stage change records audit entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		activityRepo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, activityRepo)

		current := entities.Lead{
			ID: "lead-1", Name: "Asha", Phone: "9876543210",
			Stage: entities.LeadStageNew, Temperature: entities.TemperatureWarm,
			CreatedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if !l.CreatedAt.Equal(current.CreatedAt) {
					t.Fatalf("expected CreatedAt preserved")
				}
				return l, nil
			})
		activityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ActivityLog{}, nil)

		updated := current
		updated.Stage = entities.LeadStageNegotiation
		if _, err := uc.Update(context.Background(), updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unchanged stage records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		activityRepo := mock_interfaces.NewMockIActivityLogRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, activityRepo)

		current := entities.Lead{
			ID: "lead-1", Name: "Asha", Phone: "9876543210",
			Stage: entities.LeadStageNew, Temperature: entities.TemperatureWarm,
		}
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) { return l, nil })

		if _, err := uc.Update(context.Background(), current); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lead{}, nil)

		_, err := uc.Update(context.Background(), entities.Lead{
			ID: "ghost", Name: "Asha", Phone: "9876543210",
			Stage: entities.LeadStageNew, Temperature: entities.TemperatureWarm,
		})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("deleted between check and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		current := entities.Lead{
			ID: "lead-1", Name: "Asha", Phone: "9876543210",
			Stage: entities.LeadStageNew, Temperature: entities.TemperatureWarm,
		}
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(current, nil)
		// A failed conditional put surfaces as a zero lead, not an error.
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Lead{}, nil)

		_, err := uc.Update(context.Background(), current)
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})
}

func TestLeadUseCase_Delete(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil, nil, nil)
		if err := uc.Delete(context.Background(), " "); !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lead{}, nil)

		if err := uc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "lead-1").Return(nil)

		if err := uc.Delete(context.Background(), "lead-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeadUseCase_Detail(t *testing.T) {
	t.Run("groups visits across phone-matched leads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		visitRepo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		callRepo := mock_interfaces.NewMockICallLogRepository(ctrl)
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewLeadUseCase(repo, visitRepo, callRepo, dealRepo, nil)

		primary := entities.Lead{ID: "lead-1", Name: "Asha", Phone: "9876543210"}
		sibling := entities.Lead{ID: "lead-2", Name: "Asha", Phone: "9876543210"}

		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(primary, nil)
		visitRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.SiteVisit{
			{ID: "v1", LeadID: "lead-1", Project: &entities.SubjectRef{ID: "proj-1", Name: "Sunrise Heights"}, ScheduledAt: time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC)},
		}, nil)
		callRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return(nil, nil)
		dealRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return(nil, nil)

		repo.EXPECT().ListByPhone(gomock.Any(), "9876543210").Return([]entities.Lead{primary, sibling}, nil)
		visitRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-2").Return([]entities.SiteVisit{
			{ID: "v2", LeadID: "lead-2", Project: &entities.SubjectRef{ID: "proj-1", Name: "Sunrise Heights"}, ScheduledAt: time.Date(2026, 2, 8, 11, 0, 0, 0, time.UTC)},
		}, nil)
		callRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-2").Return(nil, nil)
		dealRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-2").Return(nil, nil)

		detail, err := uc.Detail(context.Background(), "lead-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.RelatedLeads) != 1 || detail.RelatedLeads[0].ID != "lead-2" {
			t.Fatalf("expected one sibling lead-2, got %v", detail.RelatedLeads)
		}
		if len(detail.ProjectGroups) != 1 {
			t.Fatalf("expected one project group, got %d", len(detail.ProjectGroups))
		}
		if len(detail.ProjectGroups[0].Visits) != 2 {
			t.Fatalf("expected visits from both leads in the group, got %d", len(detail.ProjectGroups[0].Visits))
		}
		if detail.Timeline != nil {
			t.Fatalf("expected no flat timeline when groups exist")
		}
	})

	t.Run("falls back to timeline without groupable visits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		visitRepo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		callRepo := mock_interfaces.NewMockICallLogRepository(ctrl)
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		uc := NewLeadUseCase(repo, visitRepo, callRepo, dealRepo, nil)

		primary := entities.Lead{ID: "lead-1", Name: "Asha", Phone: "9876543210"}
		repo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(primary, nil)
		visitRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return(nil, nil)
		callRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return([]entities.CallLog{
			{ID: "c1", LeadID: "lead-1", CalledAt: time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)},
		}, nil)
		dealRepo.EXPECT().ListByLeadID(gomock.Any(), "lead-1").Return(nil, nil)
		repo.EXPECT().ListByPhone(gomock.Any(), "9876543210").Return([]entities.Lead{primary}, nil)

		detail, err := uc.Detail(context.Background(), "lead-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.ProjectGroups) != 0 {
			t.Fatalf("expected no project groups, got %d", len(detail.ProjectGroups))
		}
		if len(detail.Timeline) != 1 || detail.Timeline[0].Type != TimelineEntryCall {
			t.Fatalf("expected call timeline fallback, got %v", detail.Timeline)
		}
	})
}

func TestLeadUseCase_Pipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	visitRepo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
	uc := NewLeadUseCase(repo, visitRepo, nil, nil, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Lead{
		{ID: "l1", Name: "Asha", Stage: entities.LeadStageNew},
	}, nil)
	visitRepo.EXPECT().ListByLeadID(gomock.Any(), "l1").Return([]entities.SiteVisit{
		{ID: "v1", LeadID: "l1", Project: &entities.SubjectRef{ID: "proj-1", Name: "Sunrise Heights"}},
	}, nil)

	cols, err := uc.Pipeline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cols) != len(entities.PipelineStages) {
		t.Fatalf("expected %d columns, got %d", len(entities.PipelineStages), len(cols))
	}
	if cols[0].Stage != entities.LeadStageNew || len(cols[0].Rows) != 1 {
		t.Fatalf("expected l1 row in new column, got %v", cols[0])
	}
	for _, col := range cols[1:] {
		if len(col.Rows) != 0 {
			t.Fatalf("expected empty column %s", col.Stage)
		}
	}
}
