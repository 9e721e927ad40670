package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/product"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates a product per requested detail, the details themselves, and the
// order in "new" status, all inside a single transaction so a partial
// failure never leaves a half-built order behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("PR-123", payloads)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %d created in status %s", created.ID(), created.Status())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning the order and product repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns the persisted aggregate with all storage-assigned identifiers.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	details := make([]*order.Detail, 0, len(cmd.Details()))
	for _, payload := range cmd.Details() {
		prod, err := product.NewProduct(payload.ProductName)
		if err != nil {
			return nil, err
		}

		prod, err = productRepo.Add(ctx, prod)
		if err != nil {
			return nil, err
		}

		detail, err := order.NewDetail(payload.Amount, payload.Price, prod)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	newOrder, err := order.NewOrder(cmd.ExternalID(), details)
	if err != nil {
		return nil, err
	}

	created, err := orderRepo.Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
