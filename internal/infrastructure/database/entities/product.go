package entities

import (
	"time"

	"capper-server/internal/domain/catalog"
)

// Product represents the database schema for catalog products.
type Product struct {
	ID          uint      `gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	Name        string    `gorm:"type:varchar(256);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
}

// TableName specifies the table name for Product.
func (Product) TableName() string {
	return "products"
}

// EtoD converts the database entity to the domain model.
func (p *Product) EtoD() *catalog.Product {
	return &catalog.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// NewSchemaProduct creates a database entity from the domain model.
func NewSchemaProduct(p *catalog.Product) *Product {
	return &Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}
