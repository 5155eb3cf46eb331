package flights

import (
	"errors"
	"net/http"

	"skybook/internal/planes"
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

func (c *Controller) CreateFlight(ctx *gin.Context) {
	var req CreateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.CreateFlight(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, planes.ErrPlaneNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Flight created successfully", resp, nil)
}

func (c *Controller) GetFlight(ctx *gin.Context) {
	resp, err := c.service.GetFlight(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrFlightNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight retrieved successfully", resp, nil)
}

func (c *Controller) ListFlights(ctx *gin.Context) {
	var filters SearchFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	resp, err := c.service.ListFlights(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list flights", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully", resp, nil)
}

func (c *Controller) UpdateFlight(ctx *gin.Context) {
	var req UpdateFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.UpdateFlight(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrFlightNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
		case errors.Is(err, planes.ErrPlaneNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Plane not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight updated successfully", resp, nil)
}

func (c *Controller) DeleteFlight(ctx *gin.Context) {
	if err := c.service.DeleteFlight(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrFlightNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight deleted successfully", nil, nil)
}

func (c *Controller) ListCities(ctx *gin.Context) {
	resp, err := c.service.ListCities(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list cities", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cities retrieved successfully", resp, nil)
}
