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

var errInvalidDealPayload = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)

// DealHandler handles HTTP requests for deals.

type DealHandler struct {
	usecase usecase.IDealUseCase
}

func NewDealHandler(uc usecase.IDealUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

func (h *DealHandler) CreateDeal(c *gin.Context) {
	var payload request.DealRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *DealHandler) ListDealsByLead(c *gin.Context) {
	deals, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) UpdateDealStage(c *gin.Context) {
	var payload request.DealStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStage(c.Request.Context(), c.Param("id"), entities.DealStage(payload.Stage))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidDealValue),
		errors.Is(err, usecase.ErrInvalidDealStage), errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
