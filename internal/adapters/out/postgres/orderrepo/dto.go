// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/postgres/productrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Details are owned by the order and removed together with it through the
// cascading foreign key.
type OrderDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	ExternalID string `gorm:"size:128"`
	Status     int    `gorm:"index"`
	CreatedAt  time.Time
	Details    []OrderDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents one order line. Amount and price are optional
// and stored as NULL when absent.
type OrderDetailDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	Amount    *int
	Price     *decimal.Decimal       `gorm:"type:decimal(6,2)"`
	ProductID int64                  `gorm:"index"`
	Product   productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order detail entities.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// fromDomain converts an order domain aggregate to its database representation.
// Detail products must already be persisted: only the product identifier is
// written, never the product row itself.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		var price *decimal.Decimal
		if p := detail.Price(); p != nil {
			raw := p.Decimal()
			price = &raw
		}

		details = append(details, OrderDetailDTO{
			ID:        detail.ID(),
			Amount:    detail.Amount(),
			Price:     price,
			ProductID: detail.Product().ID(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		ExternalID: aggregate.ExternalID(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
		Details:    details,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including details and their products
// using the Restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	details := make([]*order.Detail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		storedProduct, err := product.RestoreProduct(detailDTO.Product.ID, detailDTO.Product.Name)
		if err != nil {
			return nil, err
		}

		var price *kernel.Price
		if detailDTO.Price != nil {
			parsed, priceErr := kernel.NewPriceFromDecimal(*detailDTO.Price)
			if priceErr != nil {
				return nil, priceErr
			}
			price = &parsed
		}

		detail, err := order.RestoreDetail(detailDTO.ID, detailDTO.Amount, price, storedProduct)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ExternalID,
		order.Status(dto.Status),
		dto.CreatedAt,
		details,
	)
}
