// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the sole entity in the system: a registered account identified by a
// unique email and a store-generated numeric id.
type User struct {
	ID           int64  // Auto-incremented identifier assigned by the store on insert.
	Name         string // Display name, non-empty.
	Email        string // Login key, unique across all accounts.
	PasswordHash string // Opaque bcrypt digest. Never serialized in any API response.
}
