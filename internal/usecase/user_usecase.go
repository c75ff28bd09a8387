// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usuarios/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateInput defines the data for updating an account. Password is optional:
// nil (or empty) leaves the stored credential untouched.
type UpdateInput struct {
	Name     string
	Email    string
	Password *string
}

// --- Output DTOs ---

// RegisterOutput returns the store-assigned id of the new account.
type RegisterOutput struct {
	ID int64
}

// LoginOutput returns the authenticated account. The password hash never
// leaves the usecase layer.
type LoginOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for account business operations.
// This is the contract the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	Update(ctx context.Context, id int64, input *UpdateInput) error
	Delete(ctx context.Context, id int64) error
}
