package queries

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// DefaultLimit is the page size applied when the caller does not
	// provide a limit query parameter.
	DefaultLimit = 10
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// orderableColumns whitelists the columns the list endpoint may sort by.
var orderableColumns = map[string]string{
	"id":         "id",
	"status":     "status",
	"created_at": "created_at",
}

// GetOrdersQuery retrieves a filtered, ordered and paginated page of
// orders together with the total number of matching rows.
//
// Example:
//
//	status := order.New
//	orderBy := "-created_at"
//	query, _ := NewGetOrdersQuery(nil, &status, &orderBy, nil, nil)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type GetOrdersQuery struct {
	externalID *string
	status     *order.Status
	orderBy    string
	descending bool
	offset     int
	limit      int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a list query. Nil parameters fall back to
// defaults: no filters, ordering by id ascending, offset 0 and
// DefaultLimit rows per page. The ordering parameter accepts a column
// name from the whitelist (id, status, created_at), optionally prefixed
// with "-" for descending order.
func NewGetOrdersQuery(
	externalID *string,
	status *order.Status,
	orderBy *string,
	offset *int,
	limit *int,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		externalID: externalID,
		status:     status,
		orderBy:    "id",
		limit:      DefaultLimit,
		guard:      guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if orderBy != nil {
		column := strings.TrimPrefix(*orderBy, "-")

		resolved, ok := orderableColumns[column]
		if !ok {
			return GetOrdersQuery{}, errs.NewValueIsInvalidError("ordering")
		}

		query.orderBy = resolved
		query.descending = strings.HasPrefix(*orderBy, "-")
	}

	if offset != nil {
		if *offset < 0 {
			return GetOrdersQuery{}, errs.NewValueIsInvalidError("offset")
		}
		query.offset = *offset
	}

	if limit != nil {
		if *limit <= 0 {
			return GetOrdersQuery{}, errs.NewValueIsInvalidError("limit")
		}
		query.limit = *limit
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ExternalID returns the external identifier filter, nil when unset.
func (q GetOrdersQuery) ExternalID() *string {
	return q.externalID
}

// Status returns the status filter, nil when unset.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderBy returns the resolved ordering column.
func (q GetOrdersQuery) OrderBy() string {
	return q.orderBy
}

// Descending reports whether the ordering is descending.
func (q GetOrdersQuery) Descending() bool {
	return q.descending
}

// Offset returns the zero-based item offset of the page.
func (q GetOrdersQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}
