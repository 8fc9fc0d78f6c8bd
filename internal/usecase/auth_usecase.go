// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"comanda/internal/domain/service"
)

// --- Input DTOs ---

// CustomerLoginInput identifies a customer. RestaurantIdentifier is optional;
// without it only the shared customer account is considered.
type CustomerLoginInput struct {
	RestaurantIdentifier string
	Email                string
	Password             string
}

// RegisterCustomerInput creates a customer. An empty RestaurantIdentifier
// registers a shared customer usable across restaurants.
type RegisterCustomerInput struct {
	RestaurantIdentifier string
	Email                string
	Password             string
	Name                 string
	Phone                string
	Address              string
}

// StaffLoginInput authenticates an admin or employee. The configured
// superadmin needs no restaurant identifier.
type StaffLoginInput struct {
	RestaurantIdentifier string
	Username             string
	Password             string
}

// DeliveryLoginInput authenticates a delivery person of one restaurant.
type DeliveryLoginInput struct {
	RestaurantIdentifier string
	Username             string
	Password             string
}

// --- Output DTOs ---

// AuthOutput carries a signed token and the claims it encodes.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	Claims    *service.Claims
}

// AuthUsecase issues tokens for every kind of account.
type AuthUsecase interface {
	LoginCustomer(ctx context.Context, input *CustomerLoginInput) (*AuthOutput, error)
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*AuthOutput, error)
	LoginStaff(ctx context.Context, input *StaffLoginInput) (*AuthOutput, error)
	LoginDelivery(ctx context.Context, input *DeliveryLoginInput) (*AuthOutput, error)
}
