package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg/metrics"

	"github.com/gin-gonic/gin"
)

var errInvalidCampaignPayload = pkg.NewDomainErrorSimple("INVALID_CAMPAIGN_INPUT", "Invalid campaign payload", http.StatusBadRequest)

// CampaignHandler handles HTTP requests for marketing campaigns.

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
}

func NewCampaignHandler(uc usecase.ICampaignUseCase) *CampaignHandler {
	return &CampaignHandler{usecase: uc}
}

func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var payload request.CampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var payload request.CampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	campaign := payload.ToEntity()
	campaign.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), campaign)
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// DispatchCampaign publishes the dispatch event and activates the
// campaign.
func (h *CampaignHandler) DispatchCampaign(c *gin.Context) {
	dispatched, err := h.usecase.Dispatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.CampaignDispatchCount.WithLabelValues(dispatched.Channel).Inc()

	c.JSON(http.StatusOK, dispatched)
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignID), errors.Is(err, usecase.ErrInvalidCampaignInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCampaignCompleted):
		return pkg.NewDomainErrorSimple("CAMPAIGN_COMPLETED", "Campaign already completed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
