// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"skybook/internal/auth"
	"skybook/internal/flights"
	"skybook/internal/payments"
	"skybook/internal/planes"
	"skybook/internal/shared/config"
	"skybook/internal/shared/database"
	"skybook/internal/stream"
	"skybook/internal/tickets"
	"skybook/internal/users"
	"skybook/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer stream.Producer
	cache    cache.Service

	planeRepo planes.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer stream.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		cache:    cache.NewService(db.GetRedisClient()),
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupUserRoutes(api)

		// Plane routes come first so the flight routes can reuse the
		// plane repository.
		r.setupPlaneRoutes(api)
		r.setupFlightRoutes(api)
		r.setupPaymentRoutes(api)
		r.setupTicketRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "skybook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "skybook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)
	userRouter := users.NewRouter(userController, r.config)

	userRouter.SetupRoutes(rg)
}

func (r *Router) setupPlaneRoutes(rg *gin.RouterGroup) {
	planeRepo := planes.NewRepository(r.db.GetPostgreSQL())
	planeService := planes.NewService(planeRepo, r.cache)
	planeController := planes.NewController(planeService)
	planeRouter := planes.NewRouter(planeController, r.config)

	// Kept for injection into the flight service
	r.planeRepo = planeRepo

	planeRouter.SetupRoutes(rg)
}

func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) {
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	flightService := flights.NewService(flightRepo, r.planeRepo, r.cache)
	flightController := flights.NewController(flightService)
	flightRouter := flights.NewRouter(flightController, r.config)

	flightRouter.SetupRoutes(rg)
}

func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	payRepo := payments.NewRepository(r.db.GetPostgreSQL())
	payService := payments.NewService(payRepo)
	payController := payments.NewController(payService)
	payRouter := payments.NewRouter(payController, r.config)

	payRouter.SetupRoutes(rg)
}

func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo, r.producer, r.cache, r.config)
	ticketController := tickets.NewController(ticketService)
	ticketRouter := tickets.NewRouter(ticketController, r.config)

	ticketRouter.SetupRoutes(rg)
}
