package users

import (
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

func (c *Controller) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")

	resp, err := c.service.GetUser(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User retrieved successfully", resp, nil)
}

func (c *Controller) ListUsers(ctx *gin.Context) {
	resp, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list users", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", resp, nil)
}

func (c *Controller) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User updated successfully", resp, nil)
}

func (c *Controller) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteUser(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User deleted successfully", nil, nil)
}
