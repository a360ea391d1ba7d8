package routes

import (
	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/handlers"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/middleware"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathUsers      = "/users"
	PathLeads      = "/leads"
	PathVisits     = "/visits"
	PathCalls      = "/calls"
	PathDeals      = "/deals"
	PathPayments   = "/payments"
	PathProjects   = "/projects"
	PathProperties = "/properties"
	PathCampaigns  = "/campaigns"
	PathReports    = "/reports"
	PathActivities = "/activities"
)

type crmHandlers struct {
	auth      *handlers.AuthHandler
	lead      *handlers.LeadHandler
	visit     *handlers.SiteVisitHandler
	call      *handlers.CallLogHandler
	deal      *handlers.DealHandler
	payment   *handlers.PaymentHandler
	inventory *handlers.InventoryHandler
	campaign  *handlers.CampaignHandler
	report    *handlers.ReportHandler
	activity  *handlers.ActivityLogHandler
}

// Role shorthands for route gating. Reads are open to every operator
// role; writes narrow progressively (telecallers only log calls,
// inventory and campaigns are management-level).
var (
	allRoles   = []string{string(entities.RoleAdmin), string(entities.RoleManager), string(entities.RoleAgent), string(entities.RoleTelecaller)}
	salesRoles = []string{string(entities.RoleAdmin), string(entities.RoleManager), string(entities.RoleAgent)}
	mgmtRoles  = []string{string(entities.RoleAdmin), string(entities.RoleManager)}
)

func addCRMRoutes(rg *gin.RouterGroup, jwtSecret string, h crmHandlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.auth.Login)
		auth.POST("/register",
			middleware.AuthRequired(jwtSecret),
			middleware.RequireRole(string(entities.RoleAdmin)),
			h.auth.Register,
		)
	}

	rg.GET(PathUsers,
		middleware.AuthRequired(jwtSecret),
		middleware.RequireRole(string(entities.RoleAdmin)),
		h.auth.ListUsers,
	)

	authed := rg.Group("", middleware.AuthRequired(jwtSecret))

	leads := authed.Group(PathLeads)
	{
		leads.GET("", middleware.RequireRole(allRoles...), h.lead.ListLeads)
		leads.GET("/pipeline", middleware.RequireRole(allRoles...), h.lead.GetPipeline)
		leads.GET("/:id", middleware.RequireRole(allRoles...), h.lead.GetLead)
		leads.GET("/:id/timeline", middleware.RequireRole(allRoles...), h.lead.GetTimeline)
		leads.GET("/:id/detail", middleware.RequireRole(allRoles...), h.lead.GetDetail)
		leads.POST("", middleware.RequireRole(salesRoles...), h.lead.CreateLead)
		leads.PUT("/:id", middleware.RequireRole(salesRoles...), h.lead.UpdateLead)
		leads.DELETE("/:id", middleware.RequireRole(mgmtRoles...), h.lead.DeleteLead)

		leads.GET("/:id/visits", middleware.RequireRole(allRoles...), withLeadIDParam(h.visit.ListVisitsByLead))
		leads.GET("/:id/calls", middleware.RequireRole(allRoles...), withLeadIDParam(h.call.ListCallsByLead))
		leads.GET("/:id/deals", middleware.RequireRole(allRoles...), withLeadIDParam(h.deal.ListDealsByLead))
		leads.GET("/:id/activities", middleware.RequireRole(allRoles...), withLeadIDParam(h.activity.ListByLead))
	}

	visits := authed.Group(PathVisits)
	{
		visits.POST("", middleware.RequireRole(salesRoles...), h.visit.ScheduleVisit)
		visits.PATCH("/:id/status", middleware.RequireRole(salesRoles...), h.visit.UpdateVisitStatus)
		visits.PATCH("/:id/complete", middleware.RequireRole(salesRoles...), h.visit.CompleteVisit)
	}

	calls := authed.Group(PathCalls)
	{
		calls.POST("", middleware.RequireRole(allRoles...), h.call.LogCall)
		calls.GET("/agent/:agent_id", middleware.RequireRole(allRoles...), h.call.ListCallsByAgent)
	}

	deals := authed.Group(PathDeals)
	{
		deals.POST("", middleware.RequireRole(salesRoles...), h.deal.CreateDeal)
		deals.PATCH("/:id/stage", middleware.RequireRole(salesRoles...), h.deal.UpdateDealStage)
	}

	payments := authed.Group(PathPayments)
	{
		payments.POST("/:deal_id", middleware.RequireRole(salesRoles...), h.payment.CreatePaymentByDealID)
		payments.GET("/:deal_id", middleware.RequireRole(salesRoles...), h.payment.GetPaymentByDealID)
	}

	projects := authed.Group(PathProjects)
	{
		projects.GET("", middleware.RequireRole(allRoles...), h.inventory.ListProjects)
		projects.GET("/:id", middleware.RequireRole(allRoles...), h.inventory.GetProject)
		projects.POST("", middleware.RequireRole(mgmtRoles...), h.inventory.CreateProject)
		projects.PUT("/:id", middleware.RequireRole(mgmtRoles...), h.inventory.UpdateProject)
		projects.DELETE("/:id", middleware.RequireRole(mgmtRoles...), h.inventory.DeleteProject)
	}

	properties := authed.Group(PathProperties)
	{
		properties.GET("", middleware.RequireRole(allRoles...), h.inventory.ListProperties)
		properties.GET("/:id", middleware.RequireRole(allRoles...), h.inventory.GetProperty)
		properties.POST("", middleware.RequireRole(mgmtRoles...), h.inventory.CreateProperty)
		properties.PUT("/:id", middleware.RequireRole(mgmtRoles...), h.inventory.UpdateProperty)
		properties.DELETE("/:id", middleware.RequireRole(mgmtRoles...), h.inventory.DeleteProperty)
	}

	campaigns := authed.Group(PathCampaigns)
	{
		campaigns.GET("", middleware.RequireRole(mgmtRoles...), h.campaign.ListCampaigns)
		campaigns.GET("/:id", middleware.RequireRole(mgmtRoles...), h.campaign.GetCampaign)
		campaigns.POST("", middleware.RequireRole(mgmtRoles...), h.campaign.CreateCampaign)
		campaigns.PUT("/:id", middleware.RequireRole(mgmtRoles...), h.campaign.UpdateCampaign)
		campaigns.DELETE("/:id", middleware.RequireRole(mgmtRoles...), h.campaign.DeleteCampaign)
		campaigns.POST("/:id/dispatch", middleware.RequireRole(mgmtRoles...), h.campaign.DispatchCampaign)
	}

	activities := authed.Group(PathActivities)
	{
		activities.POST("", middleware.RequireRole(allRoles...), h.activity.RecordActivity)
	}

	reports := authed.Group(PathReports)
	{
		reports.GET("/dashboard", middleware.RequireRole(mgmtRoles...), h.report.GetDashboard)
	}
}

// withLeadIDParam adapts handlers expecting a lead_id path param to the
// nested /leads/:id/... routes.
func withLeadIDParam(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "lead_id", Value: c.Param("id")})
		next(c)
	}
}
