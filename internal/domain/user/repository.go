package user

import "context"

type UserRepository interface {
	// GetByEmail retrieves a user by email for credential checks
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)
}
