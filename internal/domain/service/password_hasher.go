// Package service declares the ports the usecases call for work that lives
// outside the database: hashing, tokens, caching, clocks, QR rendering,
// event publishing and push delivery.
package service

// PasswordHasher protects staff, customer and delivery person passwords.
// The cost is fixed at construction; Check must not leak timing on mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
