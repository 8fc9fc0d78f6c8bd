package handler

import (
	"strconv"
	"strings"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthResponse is returned by every login and registration endpoint.
type AuthResponse struct {
	Token        string     `json:"token"`
	ExpiresAt    time.Time  `json:"expires_at"`
	UserID       uuid.UUID  `json:"user_id"`
	Role         string     `json:"role"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	RestaurantID *uuid.UUID `json:"restaurant_id,omitempty"`
	IsSuperAdmin bool       `json:"is_super_admin,omitempty"`
}

// RestaurantResponse is the public view of a restaurant.
type RestaurantResponse struct {
	ID            uuid.UUID `json:"id"`
	Identifier    string    `json:"identifier"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	POSEnabled    bool      `json:"pos_enabled"`
	POSProvider   string    `json:"pos_provider,omitempty"`
	POSTerminalID string    `json:"pos_terminal_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StaffResponse never carries the password hash.
type StaffResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeliveryPersonResponse never carries the password hash.
type DeliveryPersonResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func newAuthResponse(out *usecase.AuthOutput) AuthResponse {
	resp := AuthResponse{
		Token:     out.Token,
		ExpiresAt: out.ExpiresAt,
	}
	if claims := out.Claims; claims != nil {
		resp.UserID = claims.UserID
		resp.Role = claims.Role.String()
		resp.Name = claims.Name
		resp.Email = claims.Email
		resp.RestaurantID = claims.RestaurantID
		resp.IsSuperAdmin = claims.IsSuperAdmin
	}

	return resp
}

func newRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:            r.ID,
		Identifier:    r.Identifier,
		Name:          r.Name,
		IsActive:      r.IsActive,
		POSEnabled:    r.POSEnabled,
		POSProvider:   r.POSProvider,
		POSTerminalID: r.POSTerminalID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func newStaffResponse(s *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:           s.ID,
		RestaurantID: s.RestaurantID,
		Username:     s.Username,
		Email:        s.Email,
		Name:         s.Name,
		Role:         s.Role.String(),
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

func newDeliveryPersonResponse(p *entity.DeliveryPerson) DeliveryPersonResponse {
	return DeliveryPersonResponse{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		Username:     p.Username,
		Name:         p.Name,
		Phone:        p.Phone,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

// mapSlice converts a slice of entities into response DTOs.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// pathUUID parses a UUID route parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("invalid %s", name)
	}

	return id, nil
}

// optionalQueryUUID parses a UUID query parameter; an absent parameter yields nil.
func optionalQueryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError("invalid %s", name)
	}

	return &id, nil
}

// optionalQueryBool parses a boolean query parameter; an absent parameter yields nil.
func optionalQueryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError("invalid %s", name)
	}

	return &value, nil
}

// pageParams reads page and page_size; missing or malformed values fall back to
// the usecase defaults.
func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	return page, pageSize
}

// orderListParams reads the filters shared by every order listing.
// status accepts a comma separated list.
func orderListParams(c echo.Context) (*usecase.OrderListInput, error) {
	archived, err := optionalQueryBool(c, "archived")
	if err != nil {
		return nil, err
	}

	input := &usecase.OrderListInput{Archived: archived}
	input.Page, input.PageSize = pageParams(c)

	if raw := c.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := entity.OrderStatus(strings.TrimSpace(part))
			if !status.IsValid() {
				return nil, domainerrors.NewValidationError("unknown order status %q", status)
			}
			input.Statuses = append(input.Statuses, status)
		}
	}

	return input, nil
}

// bindAndValidate binds the request body and runs the struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.NewValidationError("%s", err.Error())
	}

	return nil
}
