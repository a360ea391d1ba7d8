package handlers

import (
	"errors"
	"net/http"

	request "github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/dto/request"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"
	"github.com/kavyp12/rama-vista-hub-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)

// InventoryHandler handles HTTP requests for projects and properties.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProject(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *InventoryHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, err := h.usecase.UpdateProject(c.Request.Context(), p)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProperty(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) GetProperty(c *gin.Context) {
	p, err := h.usecase.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListProperties lists all units, or a project's units when the
// project_id query parameter is set.
func (h *InventoryHandler) ListProperties(c *gin.Context) {
	properties, err := h.usecase.ListProperties(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *InventoryHandler) UpdateProperty(c *gin.Context) {
	var payload request.PropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = c.Param("id")

	updated, err := h.usecase.UpdateProperty(c.Request.Context(), p)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) DeleteProperty(c *gin.Context) {
	if err := h.usecase.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInventoryID), errors.Is(err, usecase.ErrInvalidProjectInput),
		errors.Is(err, usecase.ErrInvalidPropertyInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
