package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a request to change an existing order.
// Only the external identifier and the status are mutable; details in an
// update payload are ignored. A full update (partial = false) requires the
// external identifier to be present, a partial update applies only the
// supplied fields.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	externalID *string
	status     *order.Status
	partial    bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// Validates the order identifier, the status value when supplied, and that
// a non-partial update carries the required external identifier.
func NewUpdateOrderCommand(
	orderID int64,
	externalID *string,
	status *order.Status,
	partial bool,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		partial: partial,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setExternalID(externalID, partial),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// ExternalID returns the new external identifier, or nil when unchanged.
func (c UpdateOrderCommand) ExternalID() *string {
	return c.externalID
}

// Status returns the new status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Partial reports whether the command represents a partial update.
func (c UpdateOrderCommand) Partial() bool {
	return c.partial
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setExternalID(externalID *string, partial bool) error {
	if externalID == nil {
		if !partial {
			return errs.NewValueIsRequiredError("external_id")
		}
		return nil
	}
	if *externalID == "" {
		return errs.NewValueIsRequiredError("external_id")
	}

	c.externalID = externalID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
