// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of principal a token was issued to.
type Role string

const (
	// RoleCustomer indicates a customer placing orders.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a restaurant administrator.
	RoleAdmin Role = "admin"
	// RoleEmployee indicates restaurant staff without administrative rights.
	RoleEmployee Role = "employee"
	// RoleSuperAdmin indicates the global operator. It has no restaurant.
	RoleSuperAdmin Role = "superadmin"
	// RoleDelivery indicates a delivery person.
	RoleDelivery Role = "delivery"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleEmployee, RoleSuperAdmin, RoleDelivery:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to restaurant staff.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
