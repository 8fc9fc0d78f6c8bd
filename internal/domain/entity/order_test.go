package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Transition(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		table     TransitionTable
		orderType OrderType
		from      OrderStatus
		to        OrderStatus
		wantErr   string
	}{
		{name: "staff prepares a pending order", table: StaffTransitions, orderType: OrderTypeDelivery, from: OrderStatusPending, to: OrderStatusPreparing},
		{name: "staff cancels a pending order", table: StaffTransitions, orderType: OrderTypeDelivery, from: OrderStatusPending, to: OrderStatusCancelled},
		{name: "dine-in order is served", table: StaffTransitions, orderType: OrderTypeDineIn, from: OrderStatusDelivering, to: OrderStatusDelivered},
		{name: "served order is paid", table: StaffTransitions, orderType: OrderTypeDineIn, from: OrderStatusDelivered, to: OrderStatusCompleted},
		{name: "delivery order cannot be marked served", table: StaffTransitions, orderType: OrderTypeDelivery, from: OrderStatusDelivering, to: OrderStatusDelivered, wantErr: "only dine-in"},
		{name: "pending cannot skip to completed", table: StaffTransitions, orderType: OrderTypeTakeaway, from: OrderStatusPending, to: OrderStatusCompleted, wantErr: `from "pending" to "completed"`},
		{name: "terminal status is final", table: StaffTransitions, orderType: OrderTypeDelivery, from: OrderStatusCompleted, to: OrderStatusCancelled, wantErr: "invalid status transition"},
		{name: "unknown target status", table: StaffTransitions, orderType: OrderTypeDelivery, from: OrderStatusPending, to: OrderStatus("lost"), wantErr: "unknown status"},
		{name: "driver picks up a prepared order", table: DeliveryTransitions, orderType: OrderTypeDelivery, from: OrderStatusPreparing, to: OrderStatusDelivering},
		{name: "driver completes a delivery", table: DeliveryTransitions, orderType: OrderTypeDelivery, from: OrderStatusDelivering, to: OrderStatusCompleted},
		{name: "driver cannot cancel a pending order", table: DeliveryTransitions, orderType: OrderTypeDelivery, from: OrderStatusPending, to: OrderStatusCancelled, wantErr: "invalid status transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{ID: uuid.New(), OrderType: tt.orderType, Status: tt.from}

			history, err := order.Transition(tt.table, tt.to, "staff:1", "  rush  ", now)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, history)
				assert.Equal(t, tt.from, order.Status)

				var transitionErr *TransitionError
				assert.ErrorAs(t, err, &transitionErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
			assert.Equal(t, now, order.UpdatedAt)
			assert.Equal(t, order.ID, history.OrderID)
			assert.Equal(t, tt.from, history.FromStatus)
			assert.Equal(t, tt.to, history.ToStatus)
			assert.Equal(t, "staff:1", history.ChangedBy)
			assert.Equal(t, "rush", history.Note)
		})
	}
}

func TestOrder_RecalculateTotal(t *testing.T) {
	burger := &Product{ID: uuid.New(), Name: "Burger", Price: decimal.RequireFromString("8.50")}
	soda := &Product{ID: uuid.New(), Name: "Soda", Price: decimal.RequireFromString("1.25")}

	order := &Order{Items: []*OrderItem{NewOrderItem(burger, 2), NewOrderItem(soda, 3)}}
	order.RecalculateTotal()

	assert.True(t, order.Items[0].Subtotal.Equal(decimal.RequireFromString("17.00")))
	assert.Equal(t, "Burger", order.Items[0].ProductName)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("20.75")), order.Total.String())
}

func TestOrder_IsAssignedTo(t *testing.T) {
	driver := uuid.New()

	assert.False(t, (&Order{}).IsAssignedTo(driver))
	assert.True(t, (&Order{DeliveryPersonID: &driver}).IsAssignedTo(driver))
	assert.False(t, (&Order{DeliveryPersonID: &driver}).IsAssignedTo(uuid.New()))
}

func TestOrderStatus_Predicates(t *testing.T) {
	assert.True(t, OrderStatusPending.IsActive())
	assert.True(t, OrderStatusDelivering.IsActive())
	assert.False(t, OrderStatusDelivered.IsActive())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusDelivered.IsTerminal())
	assert.Empty(t, StaffTransitions.Next(OrderStatusCompleted))
	assert.ElementsMatch(t, []OrderStatus{OrderStatusDelivering}, DeliveryTransitions.Next(OrderStatusPreparing))
}
