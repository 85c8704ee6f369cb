package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "reserva/internal/handler/dto/request"
	resdto "reserva/internal/handler/dto/response"
	"reserva/internal/handler/httperr"
	"reserva/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	resourceUseCase usecase.ResourceUseCase
}

func NewResourceHandler(resourceUseCase usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{
		resourceUseCase: resourceUseCase,
	}
}

// @Summary List resources
// @Description List resources, optionally filtered by kind
// @Tags resources
// @Produce json
// @Param kind query string false "Resource kind filter"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 500 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	var kind *string
	if v := c.Query("kind"); v != "" {
		kind = &v
	}

	items, err := h.resourceUseCase.List(c.Request.Context(), kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceList(items))
}

// @Summary Create resource
// @Description Register a new resource
// @Tags resources
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body reqdto.CreateResourceRequest true "Create resource request"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.resourceUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidResourceInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, usecase.ErrDuplicateResource):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource with the same kind and name already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromResource(created))
}

// @Summary Update resource
// @Description Partially update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Update resource request"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id} [patch]
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.resourceUseCase.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidResourceInput), errors.Is(err, usecase.ErrEmptyUpdate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, usecase.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, usecase.ErrDuplicateResource):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource with the same kind and name already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResource(updated))
}

// @Summary Delete resource
// @Description Soft-delete by default (marks the resource Inactive); pass hard=true to remove the row
// @Tags resources
// @Security SessionCookie
// @Param id path string true "Resource ID"
// @Param hard query bool false "Hard delete (default false)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	mode := usecase.DeleteSoft
	if v := c.Query("hard"); v != "" {
		hard, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid hard flag", nil)
			return
		}
		if hard {
			mode = usecase.DeleteHard
		}
	}

	if err := h.resourceUseCase.Delete(c.Request.Context(), id, mode); err != nil {
		switch {
		case errors.Is(err, usecase.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, usecase.ErrResourceInUse):
			httperr.AbortWithError(c, http.StatusConflict, err, "Resource has active bookings", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
