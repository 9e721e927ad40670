package ports

import (
	"context"

	"orders/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product entities.
// Products are created per order detail (always-create policy) and are
// never updated afterwards.
type ProductRepository interface {
	// Add persists a new product. Storage assigns the identifier;
	// the returned entity carries it.
	Add(ctx context.Context, entity *product.Product) (*product.Product, error)

	// Get retrieves a product by its identifier.
	// Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)
}
