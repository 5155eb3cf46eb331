package payments

import (
	"skybook/internal/shared/config"
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles saved card routes
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

// SetupRoutes registers card routes. All require authentication.
func (payRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	cards.Use(middleware.JWTAuthWithConfig(payRouter.config))
	{
		cards.POST("", payRouter.controller.CreateCard)
		cards.GET("", payRouter.controller.ListCards)
		cards.DELETE("/:id", payRouter.controller.DeleteCard)
	}
}
