package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// FailOrderCommandHandler handles the fail transition of the order lifecycle.
// An accepted order becomes failed; an already failed order is returned
// unchanged without touching storage. Failing a "new" order is rejected.
type FailOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFailOrderCommandHandler creates a handler for the fail transition.
func NewFailOrderCommandHandler(uowFactory OrderUoWFactory) FailOrderCommandHandler {
	return FailOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fail command and returns the resulting aggregate.
func (h FailOrderCommandHandler) Handle(ctx context.Context, cmd FailOrderCommand) (*order.Order, error) {
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

	previous := aggregate.Status()
	if err = aggregate.Fail(); err != nil {
		return nil, err
	}

	// No-op transitions (failed -> failed) skip the write.
	if aggregate.Status() != previous {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
