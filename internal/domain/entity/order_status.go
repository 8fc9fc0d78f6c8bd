package entity

import (
	"fmt"
	"slices"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	// OrderStatusDelivered is used by dine-in orders: served and waiting for payment.
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ActiveOrderStatuses are the statuses that block a cash register from closing.
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusDelivering,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is part of the vocabulary.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivering,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsActive reports whether the order is still being worked on.
func (s OrderStatus) IsActive() bool {
	return slices.Contains(ActiveOrderStatuses, s)
}

// TransitionTable maps a status to the statuses it may move to.
type TransitionTable map[OrderStatus][]OrderStatus

// Allows reports whether from -> to is an edge of the table.
func (t TransitionTable) Allows(from, to OrderStatus) bool {
	return slices.Contains(t[from], to)
}

// Next returns the statuses reachable from the given one.
func (t TransitionTable) Next(from OrderStatus) []OrderStatus {
	return slices.Clone(t[from])
}

// StaffTransitions is used by the admin/employee order endpoint.
var StaffTransitions = TransitionTable{
	OrderStatusPending:    {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusDelivering, OrderStatusCancelled},
	OrderStatusDelivering: {OrderStatusCompleted, OrderStatusCancelled, OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusCompleted, OrderStatusCancelled},
}

// DeliveryTransitions is used by the delivery-person endpoint.
var DeliveryTransitions = TransitionTable{
	OrderStatusPreparing:  {OrderStatusDelivering},
	OrderStatusDelivering: {OrderStatusCompleted, OrderStatusCancelled},
}

// TransitionError describes a rejected status change.
type TransitionError struct {
	From   OrderStatus
	To     OrderStatus
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}
