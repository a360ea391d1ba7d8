package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	mock_interfaces "github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newReportFixtures(ctrl *gomock.Controller) (*mock_interfaces.MockILeadRepository, *mock_interfaces.MockISiteVisitRepository, *mock_interfaces.MockIDealRepository, *mock_interfaces.MockICampaignRepository) {
	return mock_interfaces.NewMockILeadRepository(ctrl),
		mock_interfaces.NewMockISiteVisitRepository(ctrl),
		mock_interfaces.NewMockIDealRepository(ctrl),
		mock_interfaces.NewMockICampaignRepository(ctrl)
}

func expectReportData(
	leadRepo *mock_interfaces.MockILeadRepository,
	visitRepo *mock_interfaces.MockISiteVisitRepository,
	dealRepo *mock_interfaces.MockIDealRepository,
	campaignRepo *mock_interfaces.MockICampaignRepository,
) {
	leadRepo.EXPECT().List(gomock.Any()).Return([]entities.Lead{
		{ID: "l1", Stage: entities.LeadStageNew, Temperature: entities.TemperatureHot},
		{ID: "l2", Stage: entities.LeadStageNew, Temperature: entities.TemperatureWarm},
		{ID: "l3", Stage: entities.LeadStageNegotiation, Temperature: entities.TemperatureHot},
	}, nil)
	visitRepo.EXPECT().List(gomock.Any()).Return([]entities.SiteVisit{
		{ID: "v1", Status: entities.VisitStatusScheduled},
		{ID: "v2", Status: entities.VisitStatusCompleted},
	}, nil)
	dealRepo.EXPECT().List(gomock.Any()).Return([]entities.Deal{
		{ID: "d1", Value: 100000, Stage: entities.DealStageOpen},
		{ID: "d2", Value: 250000, Stage: entities.DealStageWon},
	}, nil)
	campaignRepo.EXPECT().List(gomock.Any()).Return([]entities.Campaign{
		{ID: "c1", Budget: 5000},
	}, nil)
}

func TestReportUseCase_Dashboard(t *testing.T) {
	t.Run("computes aggregates without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo, visitRepo, dealRepo, campaignRepo := newReportFixtures(ctrl)
		uc := NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, nil, nil)

		expectReportData(leadRepo, visitRepo, dealRepo, campaignRepo)

		report, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.LeadsByStage[entities.LeadStageNew] != 2 {
			t.Fatalf("expected 2 new leads, got %d", report.LeadsByStage[entities.LeadStageNew])
		}
		if report.LeadsByStage[entities.LeadStageLost] != 0 {
			t.Fatalf("expected zeroed column for empty stage")
		}
		if report.LeadsByTemperature[entities.TemperatureHot] != 2 {
			t.Fatalf("expected 2 hot leads, got %d", report.LeadsByTemperature[entities.TemperatureHot])
		}
		if report.VisitsByStatus[entities.VisitStatusCompleted] != 1 {
			t.Fatalf("expected 1 completed visit")
		}
		if report.TotalDealValue != 350000 || report.WonDealValue != 250000 {
			t.Fatalf("unexpected deal totals %f / %f", report.TotalDealValue, report.WonDealValue)
		}
		if report.CampaignSpend != 5000 {
			t.Fatalf("expected campaign spend 5000, got %f", report.CampaignSpend)
		}
	})

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo, visitRepo, dealRepo, campaignRepo := newReportFixtures(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, cache, nil)

		cached := DashboardReport{TotalDealValue: 42, GeneratedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
		b, _ := json.Marshal(cached)
		cache.EXPECT().Get(gomock.Any(), "reports:dashboard").Return(b, nil)

		report, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalDealValue != 42 {
			t.Fatalf("expected cached report, got %+v", report)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo, visitRepo, dealRepo, campaignRepo := newReportFixtures(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "reports:dashboard").Return(nil, nil)
		expectReportData(leadRepo, visitRepo, dealRepo, campaignRepo)
		cache.EXPECT().Set(gomock.Any(), "reports:dashboard", gomock.Any(), 60*time.Second).Return(nil)

		if _, err := uc.Dashboard(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cache errors degrade to recomputation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo, visitRepo, dealRepo, campaignRepo := newReportFixtures(ctrl)
		cache := mock_interfaces.NewMockIReportCache(ctrl)
		uc := NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "reports:dashboard").Return(nil, errors.New("redis down"))
		expectReportData(leadRepo, visitRepo, dealRepo, campaignRepo)
		cache.EXPECT().Set(gomock.Any(), "reports:dashboard", gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		report, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("expected degradation, got error %v", err)
		}
		if report.TotalDealValue != 350000 {
			t.Fatalf("expected computed report, got %+v", report)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo, visitRepo, dealRepo, campaignRepo := newReportFixtures(ctrl)
		uc := NewReportUseCase(leadRepo, visitRepo, dealRepo, campaignRepo, nil, nil)

		leadRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))

		if _, err := uc.Dashboard(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
