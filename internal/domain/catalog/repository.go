package catalog

import "context"

// Repository exposes CRUD operations for products.
type Repository interface {
	List(ctx context.Context, limit int) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
