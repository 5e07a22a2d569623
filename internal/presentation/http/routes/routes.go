package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quartzsoft/tempus-api/internal/config"
	domainRepo "github.com/quartzsoft/tempus-api/internal/domain/repository"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/handler"
	"github.com/quartzsoft/tempus-api/internal/presentation/http/middleware"
	"github.com/quartzsoft/tempus-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Store       *handler.StoreHandler
	Product     *handler.ProductHandler
	Collection  *handler.CollectionHandler
	Supplier    *handler.SupplierHandler
	Customer    *handler.CustomerHandler
	Appointment *handler.AppointmentHandler
	Stock       *handler.StockHandler
	Session     *handler.SessionHandler
	Sale        *handler.SaleHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	stores := protected.Group("/stores")
	{
		stores.POST("", middleware.RequireRole("admin"), h.Store.Create)
		stores.GET("", h.Store.List)
		stores.GET("/:id", h.Store.Get)
		stores.PUT("/:id", middleware.RequireRole("admin"), h.Store.Update)
		stores.DELETE("/:id", middleware.RequireRole("admin"), h.Store.Delete)
		stores.GET("/:id/stock", h.Stock.ListByStore)
		stores.GET("/:id/registers", h.Session.ListRegisters)
	}

	products := protected.Group("/products")
	{
		products.POST("", middleware.RequireRole("admin", "manager"), h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	collections := protected.Group("/collections")
	{
		collections.POST("", middleware.RequireRole("admin", "manager"), h.Collection.Create)
		collections.GET("", h.Collection.List)
		collections.GET("/:id", h.Collection.Get)
		collections.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Collection.Update)
		collections.DELETE("/:id", middleware.RequireRole("admin"), h.Collection.Delete)
	}

	suppliers := protected.Group("/suppliers")
	{
		suppliers.POST("", middleware.RequireRole("admin", "manager"), h.Supplier.Create)
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Supplier.Update)
		suppliers.DELETE("/:id", middleware.RequireRole("admin"), h.Supplier.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole("admin", "manager"), h.Customer.Delete)
		customers.GET("/:id/sales", h.Customer.Sales)
	}

	appointments := protected.Group("/appointments")
	{
		appointments.POST("", h.Appointment.Create)
		appointments.GET("", h.Appointment.List)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PATCH("/:id/status", h.Appointment.Transition)
		appointments.PATCH("/:id/reschedule", h.Appointment.Reschedule)
	}

	stock := protected.Group("/stock")
	{
		stock.POST("", middleware.RequireRole("admin", "manager"), h.Stock.Create)
		stock.GET("", h.Stock.List)
		stock.GET("/alerts", h.Stock.Alerts)
		stock.GET("/:id", h.Stock.Get)
		stock.POST("/:id/add", h.Stock.Add)
		stock.POST("/:id/remove", h.Stock.Remove)
		stock.GET("/:id/movements", h.Stock.Movements)
		stock.POST("/transfer",
			middleware.RequireRole("admin", "manager"),
			middleware.Idempotency(deps.IdempotencyRepo),
			h.Stock.Transfer,
		)
	}

	registers := protected.Group("/registers")
	{
		registers.POST("", middleware.RequireRole("admin", "manager"), h.Session.CreateRegister)
		registers.GET("/:id/session", h.Session.GetOpenByRegister)
	}

	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.Session.Open)
		sessions.GET("/open", h.Session.ListOpen)
		sessions.GET("/closed", h.Session.ListClosed)
		sessions.GET("/:id", h.Session.Get)
		sessions.POST("/:id/close", h.Session.Close)
	}

	sales := protected.Group("/sales")
	sales.Use(middleware.Idempotency(deps.IdempotencyRepo))
	{
		sales.POST("", h.Sale.Create)
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
	}
}
