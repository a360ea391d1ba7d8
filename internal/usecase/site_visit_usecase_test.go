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

func TestSiteVisitUseCase_Schedule(t *testing.T) {
	scheduledAt := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	t.Run("missing lead id", func(t *testing.T) {
		uc := NewSiteVisitUseCase(nil, nil)
		_, err := uc.Schedule(context.Background(), entities.SiteVisit{ScheduledAt: scheduledAt})
		if !errors.Is(err, ErrInvalidVisitInput) {
			t.Fatalf("expected ErrInvalidVisitInput, got %v", err)
		}
	})

	t.Run("missing scheduled time", func(t *testing.T) {
		uc := NewSiteVisitUseCase(nil, nil)
		_, err := uc.Schedule(context.Background(), entities.SiteVisit{LeadID: "lead-1"})
		if !errors.Is(err, ErrInvalidVisitInput) {
			t.Fatalf("expected ErrInvalidVisitInput, got %v", err)
		}
	})

	t.Run("project and property both set", func(t *testing.T) {
		uc := NewSiteVisitUseCase(nil, nil)
		_, err := uc.Schedule(context.Background(), entities.SiteVisit{
			LeadID:      "lead-1",
			ScheduledAt: scheduledAt,
			Project:     &entities.SubjectRef{ID: "proj-1", Name: "Sunrise Heights"},
			Property:    &entities.SubjectRef{ID: "prop-1", Name: "A-1203"},
		})
		if !errors.Is(err, ErrVisitSubjectConflict) {
			t.Fatalf("expected ErrVisitSubjectConflict, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewSiteVisitUseCase(nil, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lead{}, nil)

		_, err := uc.Schedule(context.Background(), entities.SiteVisit{LeadID: "ghost", ScheduledAt: scheduledAt})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewSiteVisitUseCase(repo, leadRepo)

		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
				if v.ID == "" {
					t.Fatalf("expected generated id")
				}
				if v.Status != entities.VisitStatusScheduled {
					t.Fatalf("expected scheduled status, got %s", v.Status)
				}
				if v.Rating != 0 || v.Feedback != "" {
					t.Fatalf("expected cleared outcome fields, got %d / %q", v.Rating, v.Feedback)
				}
				return v, nil
			})

		// Caller-supplied outcome fields are ignored at scheduling time.
		created, err := uc.Schedule(context.Background(), entities.SiteVisit{
			LeadID:      "lead-1",
			ScheduledAt: scheduledAt,
			Rating:      5,
			Feedback:    "pre-filled",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.LeadID != "lead-1" {
			t.Fatalf("expected lead-1, got %s", created.LeadID)
		}
	})
}

func TestSiteVisitUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewSiteVisitUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "v1", "postponed")
		if !errors.Is(err, ErrInvalidVisitStatus) {
			t.Fatalf("expected ErrInvalidVisitStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		uc := NewSiteVisitUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.SiteVisit{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ghost", entities.VisitStatusCancelled)
		if !errors.Is(err, ErrVisitNotFound) {
			t.Fatalf("expected ErrVisitNotFound, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		uc := NewSiteVisitUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.SiteVisit{ID: "v1", Status: entities.VisitStatusScheduled}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
				if v.Status != entities.VisitStatusRescheduled {
					t.Fatalf("expected rescheduled, got %s", v.Status)
				}
				return v, nil
			})

		if _, err := uc.UpdateStatus(context.Background(), "v1", entities.VisitStatusRescheduled); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSiteVisitUseCase_Complete(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := NewSiteVisitUseCase(nil, nil)
		for _, rating := range []int{0, -1, 6} {
			_, err := uc.Complete(context.Background(), "v1", rating, "")
			if !errors.Is(err, ErrInvalidVisitRating) {
				t.Fatalf("rating %d: expected ErrInvalidVisitRating, got %v", rating, err)
			}
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		uc := NewSiteVisitUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.SiteVisit{ID: "v1", Status: entities.VisitStatusScheduled}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.SiteVisit) (entities.SiteVisit, error) {
				if v.Status != entities.VisitStatusCompleted {
					t.Fatalf("expected completed, got %s", v.Status)
				}
				if v.Rating != 4 || v.Feedback != "liked the corner unit" {
					t.Fatalf("unexpected outcome %d / %q", v.Rating, v.Feedback)
				}
				return v, nil
			})

		if _, err := uc.Complete(context.Background(), "v1", 4, "  liked the corner unit  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
