package kernel

import (
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// PriceMaxDigits is the maximum number of significant digits a price may carry.
	PriceMaxDigits = 6
	// PriceFractionDigits is the number of fraction digits a price may carry.
	PriceFractionDigits = 2
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using NewPriceFromString or NewPriceFromDecimal constructors.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPriceFromString or NewPriceFromDecimal constructors")

// Price represents a monetary amount with at most PriceFractionDigits fraction
// digits and PriceMaxDigits significant digits in total.
// Price is an immutable value object; the zero value is invalid and will fail
// validation - use the constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewPriceFromString("12.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price.String()) // Output: 12.00
type Price struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPriceFromString parses a decimal string into a Price.
// The string must be a valid decimal number with at most two fraction digits
// and fit within six significant digits in total.
//
// Returns:
//   - Price: A valid price instance
//   - error: Validation error if the string is not a valid price
func NewPriceFromString(s string) (Price, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPriceFromDecimal(value)
}

// NewPriceFromDecimal creates a Price from a decimal value.
// The value must have at most two fraction digits and fit within six
// significant digits in total.
func NewPriceFromDecimal(value decimal.Decimal) (Price, error) {
	if value.Exponent() < -PriceFractionDigits {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s has more than %d fraction digits", value.String(), PriceFractionDigits),
		)
	}

	limit := decimal.New(1, PriceMaxDigits-PriceFractionDigits)
	if value.Abs().GreaterThanOrEqual(limit) {
		return Price{}, errs.NewValueIsOutOfRangeError(
			"price",
			value.String(),
			limit.Neg().String(),
			limit.String(),
		)
	}

	return Price{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Price was properly constructed.
// Returns ErrPriceIsNotConstructed for zero-value instances.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// String returns the price formatted with exactly two fraction digits,
// matching the wire representation (e.g. "12.00").
func (p Price) String() string {
	return p.value.StringFixed(PriceFractionDigits)
}

// IsEqual compares two prices by numeric value.
func (p Price) IsEqual(other Price) bool {
	return p.value.Equal(other.value)
}
