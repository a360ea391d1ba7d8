package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "reports:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardReport is the aggregate snapshot behind the reporting page.
type DashboardReport struct {
	LeadsByStage       map[entities.LeadStage]int    `json:"leads_by_stage"`
	LeadsByTemperature map[entities.Temperature]int  `json:"leads_by_temperature"`
	VisitsByStatus     map[entities.VisitStatus]int  `json:"visits_by_status"`
	TotalDealValue     float64                       `json:"total_deal_value"`
	WonDealValue       float64                       `json:"won_deal_value"`
	CampaignSpend      float64                       `json:"campaign_spend"`
	GeneratedAt        time.Time                     `json:"generated_at"`
}

// IReportUseCase exposes reporting/analytics aggregates.

type IReportUseCase interface {
	Dashboard(ctx context.Context) (DashboardReport, error)
}

// ReportUseCase computes aggregates from the repositories with a
// short-TTL cache in front. Cache errors degrade to recomputation;
// last-write-wins on concurrent refresh is acceptable.
type ReportUseCase struct {
	leadRepo     interfaces.ILeadRepository
	visitRepo    interfaces.ISiteVisitRepository
	dealRepo     interfaces.IDealRepository
	campaignRepo interfaces.ICampaignRepository
	cache        interfaces.IReportCache
	logger       *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	leadRepo interfaces.ILeadRepository,
	visitRepo interfaces.ISiteVisitRepository,
	dealRepo interfaces.IDealRepository,
	campaignRepo interfaces.ICampaignRepository,
	cache interfaces.IReportCache,
	logger *zap.Logger,
) *ReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{
		leadRepo:     leadRepo,
		visitRepo:    visitRepo,
		dealRepo:     dealRepo,
		campaignRepo: campaignRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (DashboardReport, error) {
	if u.cache != nil {
		if b, err := u.cache.Get(ctx, dashboardCacheKey); err != nil {
			u.logger.Warn("report cache get failed", zap.Error(err))
		} else if len(b) > 0 {
			var cached DashboardReport
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	report, err := u.compute(ctx)
	if err != nil {
		return DashboardReport{}, err
	}

	if u.cache != nil {
		if b, err := json.Marshal(report); err == nil {
			if err := u.cache.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL); err != nil {
				u.logger.Warn("report cache set failed", zap.Error(err))
			}
		}
	}
	return report, nil
}

func (u *ReportUseCase) compute(ctx context.Context) (DashboardReport, error) {
	leads, err := u.leadRepo.List(ctx)
	if err != nil {
		return DashboardReport{}, err
	}
	visits, err := u.visitRepo.List(ctx)
	if err != nil {
		return DashboardReport{}, err
	}
	deals, err := u.dealRepo.List(ctx)
	if err != nil {
		return DashboardReport{}, err
	}
	campaigns, err := u.campaignRepo.List(ctx)
	if err != nil {
		return DashboardReport{}, err
	}

	report := DashboardReport{
		LeadsByStage:       map[entities.LeadStage]int{},
		LeadsByTemperature: map[entities.Temperature]int{},
		VisitsByStatus:     map[entities.VisitStatus]int{},
		GeneratedAt:        time.Now().UTC(),
	}
	for _, stage := range entities.PipelineStages {
		report.LeadsByStage[stage] = 0
	}

	for _, l := range leads {
		report.LeadsByStage[l.Stage]++
		report.LeadsByTemperature[l.Temperature]++
	}
	for _, v := range visits {
		report.VisitsByStatus[v.Status]++
	}
	for _, d := range deals {
		report.TotalDealValue += d.Value
		if d.Stage == entities.DealStageWon {
			report.WonDealValue += d.Value
		}
	}
	for _, c := range campaigns {
		report.CampaignSpend += c.Budget
	}
	return report, nil
}
