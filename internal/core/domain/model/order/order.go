package order

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a purchase request in the system. It is the aggregate root
// that owns the order details and manages the order lifecycle.
//
// Order follows these invariants:
//   - Must have a non-empty external identifier
//   - Status transitions follow the rules defined on Status
//   - created_at is set once at creation and never changes
//   - Details are owned by the order and cascade-deleted with it
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the storage-assigned identifier (0 until persisted)
	id int64

	// externalID is a caller-supplied reference, free-form and not unique
	externalID string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp, immutable after construction
	createdAt time.Time

	// details are the line items owned by this order
	details []*Detail

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in status New with the current UTC timestamp.
// The external identifier is required; each supplied detail must be a valid
// Detail aggregate member.
//
// Example:
//
//	prod, _ := product.NewProduct("Dropbox")
//	detail, _ := order.NewDetail(&amount, &price, prod)
//	o, err := order.NewOrder("PR-123-321-123", []*order.Detail{detail})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(externalID string, details []*Detail) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setExternalID(externalID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored
// identifier, status and creation timestamp. Used by repository
// implementations when mapping database rows back to the domain.
func RestoreOrder(
	id int64,
	externalID string,
	status Status,
	createdAt time.Time,
	details []*Detail,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setExternalID(externalID),
		o.setStatus(status),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.id = id
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's storage-assigned identifier (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// ExternalID returns the caller-supplied order reference.
func (o *Order) ExternalID() string {
	return o.externalID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Details returns the line items owned by this order.
func (o *Order) Details() []*Detail {
	return o.details
}

// Update applies the supplied fields to the order. Nil fields are left
// unchanged, which covers partial updates.
//
// This method enforces the core mutation guard: the order must currently
// be in status New. Once the status has left New the order is immutable
// and ErrUpdateNotAllowed is returned, regardless of what the update
// would set. While New, the update may move the status to Accepted or
// Failed; that is the only path out of New.
func (o *Order) Update(externalID *string, status *Status) error {
	if err := o.status.ValidateUpdate(); err != nil {
		return err
	}

	if externalID != nil {
		if err := o.setExternalID(*externalID); err != nil {
			return err
		}
	}

	if status != nil {
		if err := o.setStatus(*status); err != nil {
			return err
		}
	}

	return nil
}

// Accept moves a Failed order to Accepted.
//
// Accepting an already Accepted order is a no-op; accepting a New order
// is rejected with ErrAcceptNotAllowed.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Fail moves an Accepted order to Failed.
//
// Failing an already Failed order is a no-op; failing a New order is
// rejected with ErrFailNotAllowed.
func (o *Order) Fail() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ValidateDelete checks whether the order may be deleted.
// Accepted orders cannot be deleted and yield ErrDeleteNotAllowed.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

func (o *Order) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("external_id")
	}
	o.externalID = externalID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details []*Detail) error {
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	o.details = details
	return nil
}
