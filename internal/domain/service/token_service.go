package service

import (
	"time"

	"comanda/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID       uuid.UUID   `json:"uid"`
	Email        string      `json:"email,omitempty"`
	Name         string      `json:"name,omitempty"`
	Role         entity.Role `json:"role"`
	RestaurantID *uuid.UUID  `json:"restaurant_id,omitempty"`
	IsSuperAdmin bool        `json:"is_super_admin,omitempty"`
	jwt.RegisteredClaims
}

// TenantID returns the restaurant the token is bound to, if any.
func (c *Claims) TenantID() (uuid.UUID, bool) {
	if c == nil || c.RestaurantID == nil {
		return uuid.Nil, false
	}

	return *c.RestaurantID, true
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken signs the claims; the lifetime is chosen from the claims' role.
	IssueToken(claims Claims) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
