package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// DetailPayload carries one requested line item of a new order: the name of
// the product to create for it plus an optional amount and price.
type DetailPayload struct {
	Amount      *int
	Price       *kernel.Price
	ProductName string
}

// CreateOrderCommand represents a request to create a new order together
// with its details. A fresh product is created for every detail from the
// embedded product name; existing products are never reused.
//
// Example:
//
//	price, _ := kernel.NewPriceFromString("12.00")
//	amount := 10
//	cmd, err := NewCreateOrderCommand("PR-123-321-123", []DetailPayload{
//	    {Amount: &amount, Price: &price, ProductName: "Dropbox"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	externalID string
	details    []DetailPayload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the external identifier is present, every supplied price
// is a constructed value object, and every detail names a product.
func NewCreateOrderCommand(externalID string, details []DetailPayload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExternalID(externalID),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ExternalID returns the caller-supplied order reference.
func (c CreateOrderCommand) ExternalID() string {
	return c.externalID
}

// Details returns the requested line items.
func (c CreateOrderCommand) Details() []DetailPayload {
	return c.details
}

func (c *CreateOrderCommand) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("external_id")
	}

	c.externalID = externalID
	return nil
}

func (c *CreateOrderCommand) setDetails(details []DetailPayload) error {
	for _, d := range details {
		if d.ProductName == "" {
			return errs.NewValueIsRequiredError("product.name")
		}
		if d.Price != nil {
			if err := d.Price.Validate(); err != nil {
				return err
			}
		}
	}

	c.details = details
	return nil
}
