package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidActivityPayload = pkg.NewDomainErrorSimple("INVALID_ACTIVITY_INPUT", "Invalid activity payload", http.StatusBadRequest)

// ActivityLogHandler exposes the audit trail.

type ActivityLogHandler struct {
	usecase usecase.IActivityLogUseCase
}

func NewActivityLogHandler(uc usecase.IActivityLogUseCase) *ActivityLogHandler {
	return &ActivityLogHandler{usecase: uc}
}

// RecordActivity appends an audit record. The actor is taken from the
// authenticated user, never from the payload.
func (h *ActivityLogHandler) RecordActivity(c *gin.Context) {
	var payload request.ActivityLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	record := payload.ToEntity()
	if actor, ok := c.Get("user_id"); ok {
		record.ActorID, _ = actor.(string)
	}

	created, err := h.usecase.Record(c.Request.Context(), record)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListByLead returns the lead's audit records. The lead_name query
// parameter widens the match to records that reference the lead only by
// name.
func (h *ActivityLogHandler) ListByLead(c *gin.Context) {
	logs, err := h.usecase.ListByLead(c.Request.Context(), c.Param("lead_id"), c.Query("lead_name"))
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, logs)
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActivityInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
