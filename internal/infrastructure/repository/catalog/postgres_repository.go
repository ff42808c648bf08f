package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "capper-server/internal/domain/catalog"
	"capper-server/internal/infrastructure/database/entities"
	"capper-server/internal/utils/platformerrors"
)

// PostgresRepository persists products via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns up to limit products ordered by ID.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]domain.Product, error) {
	var records []entities.Product
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list products",
			err,
		)
	}

	products := make([]domain.Product, len(records))
	for i, record := range records {
		products[i] = *record.EtoD()
	}
	return products, nil
}

// FindByID fetches a product by its ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var record entities.Product
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound(id)
		}
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch product",
			err,
		)
	}
	return record.EtoD(), nil
}

// Create inserts the product record.
func (r *PostgresRepository) Create(ctx context.Context, product *domain.Product) error {
	entity := entities.NewSchemaProduct(product)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create product",
			err,
		)
	}
	product.ID = entity.ID
	return nil
}

// Update rewrites an existing product record.
func (r *PostgresRepository) Update(ctx context.Context, product *domain.Product) error {
	entity := entities.NewSchemaProduct(product)
	result := r.db.WithContext(ctx).Model(&entities.Product{}).Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        entity.Name,
			"description": entity.Description,
			"price":       entity.Price,
		})
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update product",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(product.ID)
	}
	return nil
}

// Delete removes a product record.
func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Product{}, id)
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete product",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *PostgresRepository) notFound(id uint) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("product not found: %d", id),
		nil,
	)
}

// Ensure interface compliance.
var _ domain.Repository = (*PostgresRepository)(nil)
