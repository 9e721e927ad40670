// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Detail: A line item owned by an order, referencing its own product
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created in status "new" with an immutable creation timestamp
//   - Orders may only be updated while still "new"
//   - Accepted orders cannot be deleted
//   - Accept moves "failed" orders to "accepted"; Fail moves "accepted" to "failed"
//   - Accepting or failing a "new" order is rejected
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
