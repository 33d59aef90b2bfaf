package repository

import (
	"context"

	"cdms/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user row. Returns ErrDuplicate (wrapped) when the
	// email is already registered.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByEmail returns the user with the given (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)
}
