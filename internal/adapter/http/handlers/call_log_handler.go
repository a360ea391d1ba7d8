package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCallPayload = pkg.NewDomainErrorSimple("INVALID_CALL_INPUT", "Invalid call payload", http.StatusBadRequest)

// CallLogHandler handles HTTP requests for telecalling logs.

type CallLogHandler struct {
	usecase usecase.ICallLogUseCase
}

func NewCallLogHandler(uc usecase.ICallLogUseCase) *CallLogHandler {
	return &CallLogHandler{usecase: uc}
}

// LogCall records one call attempt. When agent_id is absent the
// authenticated user is used.
func (h *CallLogHandler) LogCall(c *gin.Context) {
	var payload request.CallLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCallPayload.HTTPStatus, errInvalidCallPayload.ToHTTPError())
		return
	}

	call := payload.ToEntity()
	if call.AgentID == "" {
		if userID, ok := c.Get("user_id"); ok {
			call.AgentID, _ = userID.(string)
		}
	}

	created, err := h.usecase.Log(c.Request.Context(), call)
	if err != nil {
		appErr := mapCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CallLogHandler) ListCallsByLead(c *gin.Context) {
	calls, err := h.usecase.ListByLeadID(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, calls)
}

func (h *CallLogHandler) ListCallsByAgent(c *gin.Context) {
	calls, err := h.usecase.ListByAgentID(c.Request.Context(), c.Param("agent_id"))
	if err != nil {
		appErr := mapCallError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, calls)
}

func mapCallError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCallInput), errors.Is(err, usecase.ErrInvalidCallStatus),
		errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidAgentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
