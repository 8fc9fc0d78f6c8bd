// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comanda/config"
	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/router/handler"
	"comanda/internal/domain/entity"
	"comanda/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	RestaurantHandler   *handler.RestaurantHandler
	CatalogHandler      *handler.CatalogHandler
	OrderHandler        *handler.OrderHandler
	CashRegisterHandler *handler.CashRegisterHandler
	DeviceHandler       *handler.DeviceHandler
	OrderFeedHandler    *handler.OrderFeedHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	restaurantHandler   *handler.RestaurantHandler
	catalogHandler      *handler.CatalogHandler
	orderHandler        *handler.OrderHandler
	cashRegisterHandler *handler.CashRegisterHandler
	deviceHandler       *handler.DeviceHandler
	orderFeedHandler    *handler.OrderFeedHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		restaurantHandler:   params.RestaurantHandler,
		catalogHandler:      params.CatalogHandler,
		orderHandler:        params.OrderHandler,
		cashRegisterHandler: params.CashRegisterHandler,
		deviceHandler:       params.DeviceHandler,
		orderFeedHandler:    params.OrderFeedHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware

	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	if r.config.WebSocket != nil && r.config.WebSocket.Enabled {
		e.GET("/ws/orders", r.orderFeedHandler.Subscribe, auth.Authenticate, auth.TenantFromClaims)
	}

	apiV1 := e.Group("/api/v1")

	// Auth routes, rate limited per client IP
	authGroup := apiV1.Group("/auth", middleware.NewRateLimiter(r.config.RateLimit))
	{
		authGroup.POST("/customer/login", r.authHandler.LoginCustomer)
		authGroup.POST("/customer/register", r.authHandler.RegisterCustomer)
		authGroup.POST("/staff/login", r.authHandler.LoginStaff)
		authGroup.POST("/delivery/login", r.authHandler.LoginDelivery)
	}

	// Public menu
	publicGroup := apiV1.Group("/public")
	{
		publicGroup.GET("/restaurants/:identifier", r.restaurantHandler.GetRestaurantByIdentifier)
		publicGroup.GET("/products", r.catalogHandler.ListPublicProducts)
	}

	// Tenant administration, superadmin only
	adminGroup := apiV1.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleSuperAdmin))
	{
		adminGroup.POST("/restaurants", r.restaurantHandler.CreateRestaurant)
		adminGroup.GET("/restaurants", r.restaurantHandler.ListRestaurants)
		adminGroup.GET("/restaurants/:id", r.restaurantHandler.GetRestaurant)
		adminGroup.PUT("/restaurants/:id", r.restaurantHandler.UpdateRestaurant)
		adminGroup.PATCH("/restaurants/:id/active", r.restaurantHandler.SetRestaurantActive)
	}

	// Restaurant staff; the superadmin acts on the restaurant named by restaurant_id
	staffGroup := apiV1.Group("/staff",
		auth.Authenticate,
		auth.RequireRole(entity.RoleAdmin, entity.RoleEmployee),
		auth.TenantFromClaims,
	)
	{
		staffGroup.GET("/categories", r.catalogHandler.ListCategories)
		staffGroup.GET("/products", r.catalogHandler.ListProducts)
		staffGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		staffGroup.PATCH("/products/:id/availability", r.catalogHandler.SetProductAvailability)

		staffGroup.POST("/orders", r.orderHandler.CreateStaffOrder)
		staffGroup.GET("/orders", r.orderHandler.ListOrders)
		staffGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		staffGroup.GET("/orders/:id/history", r.orderHandler.GetStatusHistory)
		staffGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
		staffGroup.PUT("/orders/:id/assignee", r.orderHandler.AssignDeliveryPerson)
		staffGroup.POST("/orders/:id/archive", r.orderHandler.ArchiveOrder)

		staffGroup.GET("/cash-registers", r.cashRegisterHandler.RestaurantHistory)
		staffGroup.GET("/delivery-persons", r.restaurantHandler.ListDeliveryPersons)

		// Catalog writes and account management need the admin role
		requireAdmin := auth.RequireRole(entity.RoleAdmin)
		staffGroup.POST("/categories", r.catalogHandler.CreateCategory, requireAdmin)
		staffGroup.PUT("/categories/:id", r.catalogHandler.UpdateCategory, requireAdmin)
		staffGroup.DELETE("/categories/:id", r.catalogHandler.DeleteCategory, requireAdmin)
		staffGroup.POST("/products", r.catalogHandler.CreateProduct, requireAdmin)
		staffGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct, requireAdmin)
		staffGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct, requireAdmin)

		staffGroup.POST("/employees", r.restaurantHandler.CreateStaff, requireAdmin)
		staffGroup.GET("/employees", r.restaurantHandler.ListStaff, requireAdmin)
		staffGroup.POST("/delivery-persons", r.restaurantHandler.CreateDeliveryPerson, requireAdmin)
		staffGroup.PATCH("/delivery-persons/:id/active", r.restaurantHandler.SetDeliveryPersonActive, requireAdmin)
		staffGroup.GET("/menu-qr", r.restaurantHandler.GetMenuQRCode, requireAdmin)
	}

	// Customers
	customerGroup := apiV1.Group("/customer",
		auth.Authenticate,
		auth.RequireRole(entity.RoleCustomer),
		auth.TenantFromClaims,
	)
	{
		customerGroup.POST("/orders", r.orderHandler.CreateCustomerOrder)
		customerGroup.GET("/orders", r.orderHandler.ListCustomerOrders)
		customerGroup.GET("/orders/:id", r.orderHandler.GetCustomerOrder)
	}

	// Delivery persons
	deliveryGroup := apiV1.Group("/delivery",
		auth.Authenticate,
		auth.RequireRole(entity.RoleDelivery),
		auth.TenantFromClaims,
	)
	{
		deliveryGroup.GET("/orders", r.orderHandler.ListAssignedOrders)
		deliveryGroup.GET("/orders/available", r.orderHandler.ListAvailableOrders)
		deliveryGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateDeliveryStatus)

		deliveryGroup.POST("/cash-register/open", r.cashRegisterHandler.Open)
		deliveryGroup.POST("/cash-register/close", r.cashRegisterHandler.Close)
		deliveryGroup.GET("/cash-register/current", r.cashRegisterHandler.Current)
		deliveryGroup.GET("/cash-register/history", r.cashRegisterHandler.MyHistory)

		deliveryGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		deliveryGroup.GET("/devices", r.deviceHandler.GetDevices)
		deliveryGroup.PUT("/devices/:id/token", r.deviceHandler.UpdateFCMToken)
		deliveryGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}
}
