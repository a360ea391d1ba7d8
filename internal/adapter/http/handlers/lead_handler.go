package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	response "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/response"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg/metrics"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler handles HTTP requests for leads, including the pipeline
// board and the timeline/detail aggregates.

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead creates a lead. Stage defaults to "new" and temperature to
// "warm" when omitted.
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	metrics.LeadsCreatedCount.Inc()

	c.JSON(http.StatusCreated, response.FromLead(created))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads lists leads, optionally filtered by stage, temperature and
// assignee query parameters.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	filter := usecase.LeadFilter{
		Stage:       entities.LeadStage(c.Query("stage")),
		Temperature: entities.Temperature(c.Query("temperature")),
		AssignedTo:  c.Query("assigned_to"),
	}

	leads, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	lead := payload.ToEntity()
	lead.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), lead)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(updated))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTimeline returns the lead's unified visit/call feed, most recent
// first.
func (h *LeadHandler) GetTimeline(c *gin.Context) {
	timeline, err := h.usecase.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, timeline)
}

// GetDetail returns the detail-dialog aggregate: phone-matched sibling
// leads plus per-project visit groups (or the flat timeline fallback).
func (h *LeadHandler) GetDetail(c *gin.Context) {
	detail, err := h.usecase.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeadDetail(detail))
}

// GetPipeline returns the kanban board: one column per funnel stage,
// one row per lead/project pairing.
func (h *LeadHandler) GetPipeline(c *gin.Context) {
	columns, err := h.usecase.Pipeline(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipeline(columns))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadInput),
		errors.Is(err, usecase.ErrInvalidStage), errors.Is(err, usecase.ErrInvalidTemperature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
