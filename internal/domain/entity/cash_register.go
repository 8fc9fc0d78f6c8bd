package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentBucket is the cash register column an order total is counted in.
type PaymentBucket string

const (
	PaymentBucketCash     PaymentBucket = "cash"
	PaymentBucketPOS      PaymentBucket = "pos"
	PaymentBucketTransfer PaymentBucket = "transfer"
)

var (
	cashSynonyms     = []string{"cash", "efectivo"}
	transferKeywords = []string{"transfer", "transferencia", "deposit", "depósito", "deposito"}
	posKeywords      = []string{"pos", "card", "tarjeta", "debit", "credit", "débito", "debito", "crédito", "credito", "datafono"}
)

// ClassifyPaymentMethod maps a free-form payment method into exactly one bucket.
// Exact cash synonyms win, then substring matches for cash, transfer and card terms.
// Anything unrecognised is counted as a transfer.
func ClassifyPaymentMethod(method string) PaymentBucket {
	normalized := strings.ToLower(strings.TrimSpace(method))

	for _, synonym := range cashSynonyms {
		if normalized == synonym {
			return PaymentBucketCash
		}
	}
	if containsAny(normalized, cashSynonyms) {
		return PaymentBucketCash
	}
	if containsAny(normalized, transferKeywords) {
		return PaymentBucketTransfer
	}
	if containsAny(normalized, posKeywords) {
		return PaymentBucketPOS
	}

	return PaymentBucketTransfer
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}

	return false
}

// CashRegisterTotals aggregates completed orders of a session by payment bucket.
type CashRegisterTotals struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalCash     decimal.Decimal `json:"total_cash"`
	TotalPOS      decimal.Decimal `json:"total_pos"`
	TotalTransfer decimal.Decimal `json:"total_transfer"`
	OrderCount    int             `json:"order_count"`
}

// SummarizeOrders sums the completed orders; other statuses are ignored.
func SummarizeOrders(orders []*Order) CashRegisterTotals {
	totals := CashRegisterTotals{
		TotalSales:    decimal.Zero,
		TotalCash:     decimal.Zero,
		TotalPOS:      decimal.Zero,
		TotalTransfer: decimal.Zero,
	}

	for _, order := range orders {
		if order.Status != OrderStatusCompleted {
			continue
		}

		totals.OrderCount++
		totals.TotalSales = totals.TotalSales.Add(order.Total)

		switch ClassifyPaymentMethod(order.PaymentMethod) {
		case PaymentBucketCash:
			totals.TotalCash = totals.TotalCash.Add(order.Total)
		case PaymentBucketPOS:
			totals.TotalPOS = totals.TotalPOS.Add(order.Total)
		case PaymentBucketTransfer:
			totals.TotalTransfer = totals.TotalTransfer.Add(order.Total)
		}
	}

	return totals
}

// CashRegister is a delivery person's open/close bounded cash session.
type CashRegister struct {
	ID               uuid.UUID        `json:"id"`
	RestaurantID     uuid.UUID        `json:"restaurant_id"`
	DeliveryPersonID uuid.UUID        `json:"delivery_person_id"`
	InitialAmount    decimal.Decimal  `json:"initial_amount"`
	OpenedAt         time.Time        `json:"opened_at"`
	ClosedAt         *time.Time       `json:"closed_at,omitempty"`
	IsOpen           bool             `json:"is_open"`
	TotalSales       decimal.Decimal  `json:"total_sales"`
	TotalCash        decimal.Decimal  `json:"total_cash"`
	TotalPOS         decimal.Decimal  `json:"total_pos"`
	TotalTransfer    decimal.Decimal  `json:"total_transfer"`
	ExpectedCash     decimal.Decimal  `json:"expected_cash"`
	ActualCash       *decimal.Decimal `json:"actual_cash,omitempty"`
	Difference       *decimal.Decimal `json:"difference,omitempty"`
	OrderCount       int              `json:"order_count"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ExpectedCashFor returns the cash that should be on hand for the given totals.
func (r *CashRegister) ExpectedCashFor(totals CashRegisterTotals) decimal.Decimal {
	return r.InitialAmount.Add(totals.TotalCash)
}

// Close records the totals and marks the session closed. The counted cash is kept
// for discrepancy display only.
func (r *CashRegister) Close(totals CashRegisterTotals, actualCash *decimal.Decimal, notes string, closedAt time.Time) {
	closed := closedAt.UTC()

	r.IsOpen = false
	r.ClosedAt = &closed
	r.TotalSales = totals.TotalSales
	r.TotalCash = totals.TotalCash
	r.TotalPOS = totals.TotalPOS
	r.TotalTransfer = totals.TotalTransfer
	r.OrderCount = totals.OrderCount
	r.ExpectedCash = r.ExpectedCashFor(totals)
	r.Notes = notes
	r.UpdatedAt = closed

	if actualCash != nil {
		counted := *actualCash
		diff := counted.Sub(r.ExpectedCash)
		r.ActualCash = &counted
		r.Difference = &diff
	}
}
