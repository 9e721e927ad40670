// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product entity, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"orders/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:64"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(entity *product.Product) ProductDTO {
	return ProductDTO{
		ID:   entity.ID(),
		Name: entity.Name(),
	}
}

// toDomain converts a database DTO to a product domain entity using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name)
}
