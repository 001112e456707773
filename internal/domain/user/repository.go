package user

import "context"

// UserRepository defines data access methods for user accounts and profiles.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListByRole returns profiles with the given role ordered by full name.
	ListByRole(ctx context.Context, role Role) ([]User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
