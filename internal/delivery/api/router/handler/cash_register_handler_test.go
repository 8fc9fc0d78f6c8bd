package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	mockUsecase "comanda/internal/mocks/usecase"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCashRegisterHandler(t *testing.T) (*CashRegisterHandler, *mockUsecase.MockCashRegisterUsecase) {
	cashRegisterUC := mockUsecase.NewMockCashRegisterUsecase(t)

	return NewCashRegisterHandler(CashRegisterHandlerParams{CashRegisterUC: cashRegisterUC, Logger: slog.Default()}), cashRegisterUC
}

func TestCashRegisterHandler_Open(t *testing.T) {
	t.Run("opened", func(t *testing.T) {
		h, cashRegisterUC := newTestCashRegisterHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/delivery/cash-register/open", map[string]any{"initial_amount": "100"})
		withClaims(c, entity.RoleDelivery)

		cashRegisterUC.EXPECT().Open(mock.Anything, testRestaurantID, testUserID, mock.MatchedBy(func(input *usecase.OpenCashRegisterInput) bool {
			return input.InitialAmount.Equal(decimal.NewFromInt(100))
		})).Return(&entity.CashRegister{ID: uuid.New(), IsOpen: true, InitialAmount: decimal.NewFromInt(100)}, nil).Once()

		require.NoError(t, serveTenant(c, h.Open))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("already open", func(t *testing.T) {
		h, cashRegisterUC := newTestCashRegisterHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/delivery/cash-register/open", map[string]any{"initial_amount": 0})
		withClaims(c, entity.RoleDelivery)

		cashRegisterUC.EXPECT().Open(mock.Anything, testRestaurantID, testUserID, mock.Anything).
			Return(nil, domainerrors.ErrCashRegisterAlreadyOpen).Once()

		require.NoError(t, serveTenant(c, h.Open))
		assertErrorCode(t, rec, http.StatusConflict, "CASH_REGISTER_ALREADY_OPEN")
	})
}

func TestCashRegisterHandler_Close(t *testing.T) {
	t.Run("active orders block the close and are counted in details", func(t *testing.T) {
		h, cashRegisterUC := newTestCashRegisterHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/delivery/cash-register/close", map[string]any{"actual_cash": "150"})
		withClaims(c, entity.RoleDelivery)

		cashRegisterUC.EXPECT().Close(mock.Anything, testRestaurantID, testUserID, mock.MatchedBy(func(input *usecase.CloseCashRegisterInput) bool {
			return input.ActualCash != nil && input.ActualCash.Equal(decimal.NewFromInt(150))
		})).Return(nil, domainerrors.ErrCashRegisterActiveOrders.WithDetails("2")).Once()

		require.NoError(t, serveTenant(c, h.Close))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CASH_REGISTER_ACTIVE_ORDERS", env.Error.Code)
		assert.Equal(t, "2", env.Error.Details)
	})

	t.Run("closed without counted cash", func(t *testing.T) {
		h, cashRegisterUC := newTestCashRegisterHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/v1/delivery/cash-register/close", map[string]any{"notes": "ok"})
		withClaims(c, entity.RoleDelivery)

		cashRegisterUC.EXPECT().Close(mock.Anything, testRestaurantID, testUserID, &usecase.CloseCashRegisterInput{Notes: "ok"}).
			Return(&entity.CashRegister{ID: uuid.New(), ExpectedCash: decimal.NewFromInt(150)}, nil).Once()

		require.NoError(t, serveTenant(c, h.Close))
		assert.Equal(t, http.StatusOK, rec.Code)

		var register map[string]any
		decodeData(t, rec, &register)
		assert.Equal(t, "150", register["expected_cash"])
	})
}

func TestCashRegisterHandler_RestaurantHistory(t *testing.T) {
	h, cashRegisterUC := newTestCashRegisterHandler(t)
	personID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/staff/cash-registers?delivery_person_id="+personID.String(), nil)
	withClaims(c, entity.RoleAdmin)

	cashRegisterUC.EXPECT().History(mock.Anything, testRestaurantID, &usecase.CashRegisterHistoryInput{DeliveryPersonID: &personID}).
		Return(&usecase.CashRegisterPage{Page: 1, PageSize: 20}, nil).Once()

	require.NoError(t, serveTenant(c, h.RestaurantHistory))
	assert.Equal(t, http.StatusOK, rec.Code)
}
