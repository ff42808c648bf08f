package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"capper-server/internal/utils/platformerrors"
)

// DefaultListLimit caps unbounded product listings.
const DefaultListLimit = 100

// Service describes the business logic surface for product operations.
type Service interface {
	ListProducts(ctx context.Context, limit int) ([]Product, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the catalog service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "catalog-service").Logger(),
	}
}

func (s *service) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, limit)
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, product *Product) error {
	if product.Name == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "product name is required", nil)
	}
	return s.repo.Create(ctx, product)
}

func (s *service) UpdateProduct(ctx context.Context, product *Product) error {
	if product.Name == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "product name is required", nil)
	}
	return s.repo.Update(ctx, product)
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
