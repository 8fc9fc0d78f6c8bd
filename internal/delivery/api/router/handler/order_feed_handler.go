package handler

import (
	"log/slog"

	"comanda/config"
	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	"comanda/internal/domain/entity"
	"comanda/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderFeedHandlerParams holds dependencies for OrderFeedHandler, injected by Fx.
type OrderFeedHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Config *config.Config
	Logger *slog.Logger
}

// OrderFeedHandler upgrades clients onto the live order event feed.
type OrderFeedHandler struct {
	hub      *realtime.Hub
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

// NewOrderFeedHandler is the constructor for OrderFeedHandler
func NewOrderFeedHandler(params OrderFeedHandlerParams) *OrderFeedHandler {
	var origins []string
	if params.Config.WebSocket != nil {
		origins = params.Config.WebSocket.AllowedOrigins
	}

	return &OrderFeedHandler{
		hub:      params.Hub,
		upgrader: realtime.NewUpgrader(origins),
		logger:   params.Logger,
	}
}

// Subscribe streams the restaurant's order events. Customers only receive
// events of their own orders.
func (h *OrderFeedHandler) Subscribe(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sub := realtime.Subscription{RestaurantID: tenantID}
	if claims.Role == entity.RoleCustomer {
		customerID := claims.UserID
		sub.CustomerID = &customerID
	}

	if err := h.hub.Serve(h.upgrader, c.Response(), c.Request(), sub); err != nil {
		// The upgrader has already answered the client.
		h.logger.Warn("Order feed subscription failed",
			slog.String("restaurant_id", tenantID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
