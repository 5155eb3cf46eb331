package payments

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

func (c *Controller) CreateCard(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.CreateCard(ctx.Request.Context(), userID.(string), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to save card", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Card saved successfully", resp, nil)
}

func (c *Controller) ListCards(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	resp, err := c.service.ListCards(ctx.Request.Context(), userID.(string))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list cards", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cards retrieved successfully", resp, nil)
}

func (c *Controller) DeleteCard(ctx *gin.Context) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	err := c.service.DeleteCard(ctx.Request.Context(), userID.(string), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Card not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Card deleted successfully", nil, nil)
}
