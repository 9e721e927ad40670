package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/product"

	"orders/internal/pkg/errs"
)

var (
	// ErrDetailIsNotConstructed is returned when a Detail instance was not created
	// through the NewDetail or RestoreDetail factory methods.
	ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail constructor")
)

// Detail represents one line item of an order: a product reference with an
// optional amount and an optional price. Details always belong to exactly
// one order and reference exactly one product; both links cascade on delete.
type Detail struct {
	// id is the storage-assigned identifier (0 until persisted)
	id int64

	// amount is the ordered quantity (nil when not supplied)
	amount *int

	// price is the line price (nil when not supplied)
	price *kernel.Price

	// product is the referenced product, created together with the detail
	product *product.Product

	// isConstructed ensures the detail was created via a constructor
	isConstructed bool
}

// NewDetail creates a new Detail with validation.
// Amount and price are optional; the product is required and must itself
// be a valid aggregate. The identifier stays zero until persisted.
func NewDetail(amount *int, price *kernel.Price, prod *product.Product) (*Detail, error) {
	d := &Detail{
		amount:        amount,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setPrice(price),
		d.setProduct(prod),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDetail reconstructs a Detail from persistence with its stored identifier.
func RestoreDetail(id int64, amount *int, price *kernel.Price, prod *product.Product) (*Detail, error) {
	d, err := NewDetail(amount, price, prod)
	if err != nil {
		return nil, err
	}

	d.id = id
	return d, nil
}

// Validate ensures the Detail instance was properly constructed.
func (d *Detail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDetailIsNotConstructed
	}

	return nil
}

// ID returns the detail's storage-assigned identifier (0 until persisted).
func (d *Detail) ID() int64 {
	return d.id
}

// Amount returns the ordered quantity, or nil when not supplied.
func (d *Detail) Amount() *int {
	return d.amount
}

// Price returns the line price, or nil when not supplied.
func (d *Detail) Price() *kernel.Price {
	return d.price
}

// Product returns the referenced product.
func (d *Detail) Product() *product.Product {
	return d.product
}

func (d *Detail) setPrice(price *kernel.Price) error {
	if price != nil {
		if err := price.Validate(); err != nil {
			return err
		}
	}
	d.price = price
	return nil
}

func (d *Detail) setProduct(prod *product.Product) error {
	if prod == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := prod.Validate(); err != nil {
		return err
	}
	d.product = prod
	return nil
}
