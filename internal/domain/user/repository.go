package user

import "context"

// Repository defines the persistence contract for user accounts.
type Repository interface {
	// FindByUsername retrieves a user document by username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Save persists a user document, overwriting any previous version.
	Save(ctx context.Context, u *User) error

	// ListAll retrieves every user in the store.
	ListAll(ctx context.Context) ([]User, error)
}
