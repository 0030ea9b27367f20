// Package account manages registered accounts and their persistence.
package account

import (
	"context"
	"errors"
	"time"
)

// Account represents a registered account. PasswordHash never leaves this
// package.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ErrNotFound is returned when an account does not exist.
var ErrNotFound = errors.New("account not found")

// ErrAlreadyExists is returned when an email is already registered.
var ErrAlreadyExists = errors.New("account already exists")

// Repository is the data-access contract for accounts.
type Repository interface {
	// Create inserts a new account; a duplicate email yields ErrAlreadyExists.
	Create(ctx context.Context, email, passwordHash string) (*Account, error)
	// GetByID fetches an account by id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Account, error)
	// GetByEmail fetches an account by email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int64, error)
}
