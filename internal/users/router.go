package users

import (
	"skybook/internal/shared/config"
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles user management routes
type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers all user routes. Everything here is admin-only.
func (userRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/users")
	admin.Use(middleware.JWTAuthWithConfig(userRouter.config))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", userRouter.controller.ListUsers)
		admin.GET("/:id", userRouter.controller.GetUser)
		admin.PUT("/:id", userRouter.controller.UpdateUser)
		admin.DELETE("/:id", userRouter.controller.DeleteUser)
	}
}
