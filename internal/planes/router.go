package planes

import (
	"skybook/internal/shared/config"
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles plane management routes
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

// SetupRoutes registers all plane routes. Fleet management is admin-only.
func (planeRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/planes")
	admin.Use(middleware.JWTAuthWithConfig(planeRouter.config))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", planeRouter.controller.CreatePlane)
		admin.GET("", planeRouter.controller.ListPlanes)
		admin.GET("/:id", planeRouter.controller.GetPlane)
		admin.PUT("/:id", planeRouter.controller.UpdatePlane)
		admin.DELETE("/:id", planeRouter.controller.DeletePlane)
		admin.GET("/:id/report", planeRouter.controller.GetPlaneReport)
	}
}
