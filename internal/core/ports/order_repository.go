package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, updating and removing orders
// together with their owned details.
type OrderRepository interface {
	// Add persists a new order aggregate together with its details.
	// Storage assigns identifiers; the returned aggregate carries them.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// Only the mutable order fields are written; details are left untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier, including its
	// details and their products. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and cascades to its details.
	// Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
