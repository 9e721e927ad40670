package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// The status guard lives on the aggregate: the stored order must still be
// in status "new", otherwise the update is rejected without any mutation.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderCommand(1, &externalID, &status, false)
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case errors.Is(err, order.ErrUpdateNotAllowed):
//	    // 403
//	}
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Returns the updated aggregate, errs.ErrObjectNotFound for unknown orders,
// or order.ErrUpdateNotAllowed when the stored status has left "new".
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.ExternalID(), cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
