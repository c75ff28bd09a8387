// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usuarios/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
// Every implementation must bind inputs as query parameters, never concatenate them.
type UserRepository interface {
	// Create persists a new user and assigns its generated ID.
	Create(ctx context.Context, user *entity.User) error

	// ExistsByEmail reports whether an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address,
	// including the stored password hash. Login path only.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user. Ordering is whatever the store returns.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update modifies name and email of the user with the given ID. When
	// passwordHash is nil the stored hash is left untouched. Returns
	// ErrUserNotFound when no row matches.
	Update(ctx context.Context, id int64, name, email string, passwordHash *string) error

	// Delete removes the user with the given ID. Returns ErrUserNotFound
	// when no row matches.
	Delete(ctx context.Context, id int64) error
}
