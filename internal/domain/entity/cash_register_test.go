package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPaymentMethod(t *testing.T) {
	tests := []struct {
		method string
		want   PaymentBucket
	}{
		{method: "cash", want: PaymentBucketCash},
		{method: "  Efectivo ", want: PaymentBucketCash},
		{method: "efectivo y tarjeta", want: PaymentBucketCash},
		{method: "Transferencia bancaria", want: PaymentBucketTransfer},
		{method: "depósito", want: PaymentBucketTransfer},
		{method: "deposito", want: PaymentBucketTransfer},
		{method: "Tarjeta de crédito", want: PaymentBucketPOS},
		{method: "POS", want: PaymentBucketPOS},
		{method: "debit card", want: PaymentBucketPOS},
		{method: "crypto", want: PaymentBucketTransfer},
		{method: "", want: PaymentBucketTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPaymentMethod(tt.method))
		})
	}
}

func TestSummarizeOrders(t *testing.T) {
	orders := []*Order{
		{Status: OrderStatusCompleted, PaymentMethod: "cash", Total: decimal.RequireFromString("10.00")},
		{Status: OrderStatusCompleted, PaymentMethod: "tarjeta", Total: decimal.RequireFromString("20.50")},
		{Status: OrderStatusCompleted, PaymentMethod: "transfer", Total: decimal.RequireFromString("5.25")},
		{Status: OrderStatusCancelled, PaymentMethod: "cash", Total: decimal.RequireFromString("99.00")},
		{Status: OrderStatusDelivering, PaymentMethod: "cash", Total: decimal.RequireFromString("7.00")},
	}

	totals := SummarizeOrders(orders)

	assert.Equal(t, 3, totals.OrderCount)
	assert.True(t, totals.TotalSales.Equal(decimal.RequireFromString("35.75")), totals.TotalSales.String())
	assert.True(t, totals.TotalCash.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, totals.TotalPOS.Equal(decimal.RequireFromString("20.50")))
	assert.True(t, totals.TotalTransfer.Equal(decimal.RequireFromString("5.25")))
	assert.True(t, totals.TotalSales.Equal(totals.TotalCash.Add(totals.TotalPOS).Add(totals.TotalTransfer)))
}

func TestSummarizeOrders_Empty(t *testing.T) {
	totals := SummarizeOrders(nil)

	assert.Zero(t, totals.OrderCount)
	assert.True(t, totals.TotalSales.IsZero())
}

func TestCashRegister_Close(t *testing.T) {
	closedAt := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	totals := CashRegisterTotals{
		TotalSales:    decimal.RequireFromString("30.00"),
		TotalCash:     decimal.RequireFromString("20.00"),
		TotalPOS:      decimal.RequireFromString("10.00"),
		TotalTransfer: decimal.Zero,
		OrderCount:    2,
	}

	t.Run("with counted cash", func(t *testing.T) {
		register := &CashRegister{InitialAmount: decimal.RequireFromString("50.00"), IsOpen: true}
		counted := decimal.RequireFromString("65.00")

		register.Close(totals, &counted, "short five", closedAt)

		assert.False(t, register.IsOpen)
		require.NotNil(t, register.ClosedAt)
		assert.Equal(t, closedAt, *register.ClosedAt)
		assert.True(t, register.ExpectedCash.Equal(decimal.RequireFromString("70.00")))
		require.NotNil(t, register.Difference)
		assert.True(t, register.Difference.Equal(decimal.RequireFromString("-5.00")), register.Difference.String())
		assert.Equal(t, 2, register.OrderCount)
		assert.Equal(t, "short five", register.Notes)
	})

	t.Run("without counted cash", func(t *testing.T) {
		register := &CashRegister{InitialAmount: decimal.Zero, IsOpen: true}

		register.Close(totals, nil, "", closedAt)

		assert.Nil(t, register.ActualCash)
		assert.Nil(t, register.Difference)
		assert.True(t, register.ExpectedCash.Equal(decimal.RequireFromString("20.00")))
	})
}
