// Package service defines the interfaces for domain services that require
// infrastructure-level implementations.
package service

// PasswordHasher abstracts one-way password hashing so the application layer
// never touches a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
