package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderResponse represents an order as returned by the read side.
// Details are always loaded together with the order.
type OrderResponse struct {
	ID         int64
	ExternalID string
	Status     order.Status
	CreatedAt  time.Time
	Details    []DetailResponse
}

// DetailResponse represents one order line. Amount and Price are
// optional and stay nil when the stored columns are NULL.
type DetailResponse struct {
	ID      int64
	Amount  *int
	Price   *kernel.Price
	Product ProductResponse
}

// ProductResponse represents the product referenced by an order line.
type ProductResponse struct {
	ID   int64
	Name string
}
