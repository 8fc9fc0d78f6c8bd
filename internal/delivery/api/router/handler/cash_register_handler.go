package handler

import (
	"log/slog"
	"net/http"

	"comanda/internal/delivery/api/middleware"
	"comanda/internal/delivery/api/response"
	"comanda/internal/domain/entity"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CashRegisterHandlerParams holds dependencies for CashRegisterHandler, injected by Fx.
type CashRegisterHandlerParams struct {
	fx.In

	CashRegisterUC usecase.CashRegisterUsecase
	Logger         *slog.Logger
}

// CashRegisterHandler serves delivery cash sessions.
type CashRegisterHandler struct {
	cashRegisterUC usecase.CashRegisterUsecase
	logger         *slog.Logger
}

// NewCashRegisterHandler is the constructor for CashRegisterHandler
func NewCashRegisterHandler(params CashRegisterHandlerParams) *CashRegisterHandler {
	return &CashRegisterHandler{
		cashRegisterUC: params.CashRegisterUC,
		logger:         params.Logger,
	}
}

// OpenCashRegisterRequest starts a session with the float on hand
type OpenCashRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initial_amount"`
}

// CloseCashRegisterRequest ends a session; actual_cash is the counted cash
type CloseCashRegisterRequest struct {
	ActualCash *decimal.Decimal `json:"actual_cash"`
	Notes      string           `json:"notes" validate:"max=1000"`
}

// CashRegisterStatusResponse is the open session with live totals
type CashRegisterStatusResponse struct {
	Register     *entity.CashRegister      `json:"register"`
	Totals       entity.CashRegisterTotals `json:"totals"`
	ExpectedCash decimal.Decimal           `json:"expected_cash"`
	ActiveOrders int64                     `json:"active_orders"`
}

// Open handles opening the delivery person's cash register
func (h *CashRegisterHandler) Open(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req OpenCashRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	register, err := h.cashRegisterUC.Open(c.Request().Context(), tenantID, deliveryPersonID, &usecase.OpenCashRegisterInput{
		InitialAmount: req.InitialAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, register)
}

// Close handles closing the delivery person's open cash register
func (h *CashRegisterHandler) Close(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CloseCashRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	register, err := h.cashRegisterUC.Close(c.Request().Context(), tenantID, deliveryPersonID, &usecase.CloseCashRegisterInput{
		ActualCash: req.ActualCash,
		Notes:      req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, register)
}

// Current returns the open session with totals computed up to now
func (h *CashRegisterHandler) Current(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.cashRegisterUC.Current(c.Request().Context(), tenantID, deliveryPersonID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CashRegisterStatusResponse{
		Register:     status.Register,
		Totals:       status.Totals,
		ExpectedCash: status.ExpectedCash,
		ActiveOrders: status.ActiveOrders,
	})
}

// MyHistory lists the delivery person's closed sessions
func (h *CashRegisterHandler) MyHistory(c echo.Context) error {
	deliveryPersonID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.history(c, &deliveryPersonID)
}

// RestaurantHistory lists closed sessions of the whole restaurant, optionally
// narrowed with delivery_person_id
func (h *CashRegisterHandler) RestaurantHistory(c echo.Context) error {
	deliveryPersonID, err := optionalQueryUUID(c, "delivery_person_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.history(c, deliveryPersonID)
}

func (h *CashRegisterHandler) history(c echo.Context, deliveryPersonID *uuid.UUID) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return response.BadRequest(c, "TENANT_REQUIRED", "A restaurant must be specified")
	}

	input := &usecase.CashRegisterHistoryInput{DeliveryPersonID: deliveryPersonID}
	input.Page, input.PageSize = pageParams(c)

	page, err := h.cashRegisterUC.History(c.Request().Context(), tenantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Registers, page.Total, page.Page, page.PageSize)
}
