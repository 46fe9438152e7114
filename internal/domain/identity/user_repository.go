package identity

import (
	"context"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// UserRepository is the persistence port for admin users
type UserRepository interface {
	shared.Repository[User]

	// FindByUsername looks up a user by username (stored lowercase)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// ExistsByUsername reports whether the username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
