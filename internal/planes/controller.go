package planes

import (
	"errors"
	"net/http"

	"skybook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) CreatePlane(ctx *gin.Context) {
	var req CreatePlaneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.CreatePlane(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Plane created successfully", resp, nil)
}

func (c *Controller) GetPlane(ctx *gin.Context) {
	resp, err := c.service.GetPlane(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPlaneNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Plane retrieved successfully", resp, nil)
}

func (c *Controller) ListPlanes(ctx *gin.Context) {
	resp, err := c.service.ListPlanes(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list planes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Planes retrieved successfully", resp, nil)
}

func (c *Controller) UpdatePlane(ctx *gin.Context) {
	var req UpdatePlaneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.UpdatePlane(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		if errors.Is(err, ErrPlaneNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Plane updated successfully", resp, nil)
}

func (c *Controller) DeletePlane(ctx *gin.Context) {
	if err := c.service.DeletePlane(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrPlaneNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Plane deleted successfully", nil, nil)
}

func (c *Controller) GetPlaneReport(ctx *gin.Context) {
	resp, err := c.service.GetPlaneReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPlaneNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Plane report generated successfully", resp, nil)
}
