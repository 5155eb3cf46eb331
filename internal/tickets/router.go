package tickets

import (
	"skybook/internal/shared/config"
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles booking and ticket lifecycle routes
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

// SetupRoutes registers booking routes under /flights and ticket
// lifecycle routes under /tickets.
func (ticketRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	flightScoped := rg.Group("/flights")
	{
		// Seat availability is public so browsers can render seat maps
		flightScoped.GET("/:id/availability", ticketRouter.controller.GetSeatAvailability)

		booked := flightScoped.Group("")
		booked.Use(middleware.JWTAuthWithConfig(ticketRouter.config))
		{
			booked.POST("/:id/tickets", ticketRouter.controller.BookFlight)
		}

		admin := flightScoped.Group("")
		admin.Use(middleware.JWTAuthWithConfig(ticketRouter.config))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/:id/tickets", ticketRouter.controller.ListFlightTickets)
			admin.GET("/:id/waitlist", ticketRouter.controller.ListWaitlist)
		}
	}

	tickets := rg.Group("/tickets")
	tickets.Use(middleware.JWTAuthWithConfig(ticketRouter.config))
	{
		tickets.GET("/my", ticketRouter.controller.ListMyTickets)
		tickets.GET("/:id", ticketRouter.controller.GetTicket)
		tickets.PUT("/:id", ticketRouter.controller.EditTicket)
		tickets.POST("/:id/pay", ticketRouter.controller.PayTicket)
		tickets.POST("/:id/cancel", ticketRouter.controller.CancelTicket)

		admin := tickets.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/:id/promote", ticketRouter.controller.PromoteTicket)
			admin.DELETE("/:id", ticketRouter.controller.DeleteTicket)
		}
	}
}
