package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shop-platform/client-service/internal/api/handler"
	"github.com/shop-platform/client-service/internal/api/middleware"
	"github.com/shop-platform/client-service/internal/core/service"
	mongodb "github.com/shop-platform/client-service/internal/infrastructure/db/mongo"
	rediscache "github.com/shop-platform/client-service/internal/infrastructure/db/redis"
	"github.com/shop-platform/client-service/internal/pkg/config"
	"github.com/shop-platform/client-service/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("clientservice"))

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	lineRepo := mongodb.NewClientItemRepository(db)
	orderRepo := mongodb.NewOrderRepository(db, lineRepo)
	catalogRepo := mongodb.NewItemRepository(db)

	// --- Services behind the read-through cache ---
	cache := rediscache.NewCache(rdb, cfg.Redis.CacheTTL)
	clientService := service.NewCachedClientService(
		service.NewClientService(clientRepo, lineRepo, orderRepo, log), cache, log)
	lineService := service.NewCachedClientItemService(
		service.NewClientItemService(lineRepo, log), cache, log)
	orderService := service.NewCachedOrderService(
		service.NewOrderService(orderRepo, lineRepo, clientRepo, log), cache, log)
	authService := service.NewAuthService(clientService, cfg.JWTSecret, cfg.TokenTTL, log)

	// --- Handlers ---
	clientHandler := handler.NewClientHandler(clientService)
	basketHandler := handler.NewBasketHandler(clientService, lineService)
	orderHandler := handler.NewOrderHandler(orderService, clientService)
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(catalogRepo)
	rootHandler := handler.NewRootHandler(cfg.DocsURL)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// The filter resolves the principal but never rejects; the per-route
	// gates below are what deny access.
	e.Use(middleware.Auth(cfg.JWTSecret, clientService, log))

	// --- Authorization gates ---
	authenticated := middleware.RequireAuthenticated()
	admin := middleware.RequireAdmin()
	staff := middleware.RequireStaff()
	selfOrStaff := middleware.RequireSelfOrStaff("id")

	// --- Error interceptors, one per resource family ---
	clientErrs := middleware.InterceptErrors(log, "client", "id")
	clientDeleteErrs := middleware.InterceptDeleteErrors(log, "client", "id")
	lineErrs := middleware.InterceptErrors(log, "basket item", "item_id")
	lineDeleteErrs := middleware.InterceptDeleteErrors(log, "basket item", "item_id")
	orderErrs := middleware.InterceptErrors(log, "order", "order_id")
	orderDeleteErrs := middleware.InterceptDeleteErrors(log, "order", "order_id")

	// --- Open routes ---
	e.GET("/", rootHandler.Redirect)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)

	// --- Catalog ---
	apiGroup.GET("/items", itemHandler.List, authenticated)
	apiGroup.GET("/items/:item_id", itemHandler.Get, authenticated,
		middleware.InterceptErrors(log, "item", "item_id"))
	apiGroup.POST("/items", itemHandler.Create, admin)

	// --- Clients ---
	clients := apiGroup.Group("/clients")
	clients.GET("", clientHandler.List, admin)
	clients.POST("", clientHandler.Create) // open: self-service registration

	// Static segments before the :id parameter routes.
	clients.GET("/managerOrders", orderHandler.ManagerQueue, staff)
	clients.GET("/orders/:order_id", orderHandler.GetByID, staff, orderErrs)
	clients.GET("/orders/:order_id/client", orderHandler.GetClient, staff, orderErrs)
	clients.GET("/byLogin/:login", clientHandler.GetByLogin,
		middleware.RequireSelfLoginOrStaff("login"),
		middleware.InterceptErrors(log, "client", "login"))
	clients.GET("/byConfirmCode/:code", clientHandler.GetByConfirmationCode,
		middleware.RequireSelfCodeOrStaff("code"),
		middleware.InterceptErrors(log, "client", "code"))

	clients.GET("/:id", clientHandler.Get, selfOrStaff, clientErrs)
	clients.PUT("/:id", clientHandler.Update, selfOrStaff, clientErrs)
	clients.DELETE("/:id", clientHandler.Delete, selfOrStaff, clientDeleteErrs)

	// --- Basket sub-resource ---
	clients.GET("/:id/basket", basketHandler.List, selfOrStaff, clientErrs)
	clients.DELETE("/:id/basket", basketHandler.Clear, selfOrStaff, clientDeleteErrs)
	clients.GET("/:id/basket/generalPrice", basketHandler.GeneralPrice, selfOrStaff, clientErrs)
	clients.GET("/:id/basket/generalWeight", basketHandler.GeneralWeight, selfOrStaff, clientErrs)
	clients.GET("/:id/basket/:item_id", basketHandler.GetItem, selfOrStaff, lineErrs)
	clients.POST("/:id/basket/:item_id", basketHandler.AddItem, selfOrStaff, lineErrs)
	clients.PUT("/:id/basket/:item_id", basketHandler.UpdateItem, selfOrStaff, lineErrs)
	clients.DELETE("/:id/basket/:item_id", basketHandler.DeleteItem, selfOrStaff, lineDeleteErrs)

	// --- Orders sub-resource ---
	clients.GET("/:id/orders", orderHandler.ListByClient, selfOrStaff, clientErrs)
	clients.DELETE("/:id/orders", orderHandler.Clear, selfOrStaff, clientDeleteErrs)
	clients.POST("/:id/orders", orderHandler.Create, selfOrStaff,
		middleware.InterceptErrors(log, "order", "id"))
	clients.GET("/:id/orders/:order_id", orderHandler.Get, selfOrStaff, orderErrs)
	// Updating an order only requires an authenticated principal.
	clients.PUT("/:id/orders/:order_id", orderHandler.Update, authenticated, orderErrs)
	clients.DELETE("/:id/orders/:order_id", orderHandler.Delete, selfOrStaff, orderDeleteErrs)

	return e
}
