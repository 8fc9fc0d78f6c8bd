// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the tenant root. Every other tenant-scoped record carries its ID.
type Restaurant struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the restaurant.
	Identifier    string    // Unique slug used as the login key and in public URLs.
	Name          string    // Display name.
	IsActive      bool      // Deactivated restaurants keep their data but reject logins and orders.
	POSEnabled    bool      // Whether orders are mirrored to an external point-of-sale system.
	POSProvider   string    // Name of the POS integration, e.g. "square".
	POSTerminalID string    // Terminal identifier at the POS provider.
	CreatedAt     time.Time // Timestamp of when this restaurant was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
