package user

import "context"

// Repository exposes read access to users. Account management is handled
// by another system; this service only validates and describes users.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}
