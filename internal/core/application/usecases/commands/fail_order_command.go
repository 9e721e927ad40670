package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrFailOrderCommandIsNotConstructed = errors.New(
		"FailOrderCommand must be created via NewFailOrderCommand constructor",
	)
)

// FailOrderCommand represents a request to move an accepted order to failed.
type FailOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewFailOrderCommand creates a command to fail an order.
func NewFailOrderCommand(orderID int64) (FailOrderCommand, error) {
	cmd := FailOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FailOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailOrderCommand) Validate() error {
	return c.guard.Validate(ErrFailOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to fail.
func (c FailOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *FailOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}

	c.orderID = orderID
	return nil
}
