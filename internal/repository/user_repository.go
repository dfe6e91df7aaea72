package repository

import (
	"context"

	"content-hub/internal/domain/entity"
)

type UserRepository interface {
	// Create inserts a new user and assigns its ID.
	// Returns ErrDuplicateKey when the username or email is already taken.
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail retrieves a user by email address.
	// Returns (nil, nil) if no such user exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
