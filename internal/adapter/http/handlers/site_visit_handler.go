package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVisitPayload = pkg.NewDomainErrorSimple("INVALID_VISIT_INPUT", "Invalid visit payload", http.StatusBadRequest)

// SiteVisitHandler handles HTTP requests for site visits.

type SiteVisitHandler struct {
	usecase usecase.ISiteVisitUseCase
}

func NewSiteVisitHandler(uc usecase.ISiteVisitUseCase) *SiteVisitHandler {
	return &SiteVisitHandler{usecase: uc}
}

func (h *SiteVisitHandler) ScheduleVisit(c *gin.Context) {
	var payload request.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Schedule(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *SiteVisitHandler) ListVisitsByLead(c *gin.Context) {
	visits, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, visits)
}

func (h *SiteVisitHandler) UpdateVisitStatus(c *gin.Context) {
	var payload request.VisitStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.VisitStatus(payload.Status))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

// CompleteVisit marks the visit completed and records the outcome
// rating (1-5) and feedback.
func (h *SiteVisitHandler) CompleteVisit(c *gin.Context) {
	var payload request.CompleteVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	completed, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.Rating, payload.Feedback)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, completed)
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitID), errors.Is(err, usecase.ErrInvalidVisitInput),
		errors.Is(err, usecase.ErrInvalidVisitStatus), errors.Is(err, usecase.ErrInvalidVisitRating),
		errors.Is(err, usecase.ErrVisitSubjectConflict), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Site visit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
