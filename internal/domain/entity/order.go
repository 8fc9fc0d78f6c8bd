package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType distinguishes how the order reaches the customer.
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) String() string {
	return string(t)
}

// IsValid checks if the OrderType is a valid value.
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypeDineIn, OrderTypeTakeaway:
		return true
	default:
		return false
	}
}

// Order is a customer order placed against a single restaurant.
// Customer contact fields are copied at order time so later profile edits do not rewrite history.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	RestaurantID     uuid.UUID       `json:"restaurant_id"`
	CustomerID       *uuid.UUID      `json:"customer_id,omitempty"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	CustomerEmail    string          `json:"customer_email,omitempty"`
	DeliveryAddress  string          `json:"delivery_address,omitempty"`
	TableNumber      string          `json:"table_number,omitempty"`
	OrderType        OrderType       `json:"order_type"`
	Status           OrderStatus     `json:"status"`
	DeliveryPersonID *uuid.UUID      `json:"delivery_person_id,omitempty"`
	Total            decimal.Decimal `json:"total"`
	PaymentMethod    string          `json:"payment_method"`
	Notes            string          `json:"notes,omitempty"`
	IsArchived       bool            `json:"is_archived"`
	Items            []*OrderItem    `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a product line at order time.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderStatusHistory is one append-only audit row of a status change.
type OrderStatusHistory struct {
	ID         uuid.UUID   `json:"id"`
	OrderID    uuid.UUID   `json:"order_id"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status"`
	ChangedBy  string      `json:"changed_by"`
	Note       string      `json:"note,omitempty"`
	ChangedAt  time.Time   `json:"changed_at"`
}

// NewOrderItem snapshots a product into an order line.
func NewOrderItem(product *Product, quantity int) *OrderItem {
	return &OrderItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		Subtotal:    product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// RecalculateTotal sets Total to the sum of the item subtotals.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	o.Total = total
}

// IsAssignedTo reports whether the order belongs to the given delivery person.
func (o *Order) IsAssignedTo(deliveryPersonID uuid.UUID) bool {
	return o.DeliveryPersonID != nil && *o.DeliveryPersonID == deliveryPersonID
}

// Transition moves the order to the target status if the table allows it and
// returns the audit row describing the change. On error the order is unchanged.
func (o *Order) Transition(table TransitionTable, to OrderStatus, changedBy, note string, now time.Time) (*OrderStatusHistory, error) {
	from := o.Status

	if !to.IsValid() {
		return nil, &TransitionError{From: from, To: to, Reason: "unknown status"}
	}
	if !table.Allows(from, to) {
		return nil, &TransitionError{From: from, To: to}
	}
	if to == OrderStatusDelivered && o.OrderType != OrderTypeDineIn {
		return nil, &TransitionError{From: from, To: to, Reason: "only dine-in orders can be marked delivered"}
	}

	o.Status = to
	o.UpdatedAt = now

	return &OrderStatusHistory{
		ID:         uuid.New(),
		OrderID:    o.ID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  changedBy,
		Note:       strings.TrimSpace(note),
		ChangedAt:  now.UTC(),
	}, nil
}
