package product

import (
	"errors"

	"orders/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a purchasable item referenced by order details.
// Every order detail creates its own Product record from the name supplied
// in the request payload; products are never reused between details.
//
// Product follows these invariants:
//   - Must have a non-empty name
//   - Identifier is assigned by storage on first persistence
//   - Can only be created through NewProduct or RestoreProduct
type Product struct {
	// id is the storage-assigned identifier (0 until persisted)
	id int64

	// name is the product display name
	name string

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new Product with validation.
// The identifier stays zero until the product is persisted.
//
// Returns:
//   - *Product: The created product if validation passes
//   - error: Validation error if the name is empty
func NewProduct(name string) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := p.setName(name); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence with its stored identifier.
// Used by repository implementations when mapping database rows back to the domain.
func RestoreProduct(id int64, name string) (*Product, error) {
	p, err := NewProduct(name)
	if err != nil {
		return nil, err
	}

	p.id = id
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the product's storage-assigned identifier (0 until persisted).
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product display name.
func (p *Product) Name() string {
	return p.name
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
