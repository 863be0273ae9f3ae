// Package service declares the ports the storefront usecases call out through:
// clock, money formatting, admin credentials, spreadsheets, QR codes and order events.
package service

// PasswordHasher hashes and checks the admin panel password.
type PasswordHasher interface {
	// Hash returns a salted hash suitable for admin.passwordHash.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
