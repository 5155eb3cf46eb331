package flights

import (
	"skybook/internal/shared/config"
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles flight routes
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

// SetupRoutes registers flight routes. Browsing is public, scheduling is admin-only.
func (flightRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/flights")
	{
		public.GET("", flightRouter.controller.ListFlights)
		public.GET("/cities", flightRouter.controller.ListCities)
		public.GET("/:id", flightRouter.controller.GetFlight)
	}

	admin := rg.Group("/flights")
	admin.Use(middleware.JWTAuthWithConfig(flightRouter.config))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("", flightRouter.controller.CreateFlight)
		admin.PUT("/:id", flightRouter.controller.UpdateFlight)
		admin.DELETE("/:id", flightRouter.controller.DeleteFlight)
	}
}
