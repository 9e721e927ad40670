package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryResponse is one page of the order list together with
// the total number of rows matching the filters.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}

// GetOrdersQueryHandler retrieves pages of orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the list query. The total is counted before the page
// window is applied, so callers can build pagination headers from it.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where, args := buildFilters(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}

	pageSQL := "SELECT id, external_id, status, created_at FROM orders" + where +
		" ORDER BY " + query.OrderBy() + " " + direction +
		" OFFSET ? LIMIT ?"
	pageArgs := append(args, query.Offset(), query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	orderIDs := make([]int64, 0, query.Limit())

	for rows.Next() {
		var resp OrderResponse

		err = rows.Scan(&resp.ID, &resp.ExternalID, &resp.Status, &resp.CreatedAt)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	details, err := loadDetails(ctx, h.db, orderIDs)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	for i := range orders {
		orders[i].Details = details[orders[i].ID]
	}

	return GetOrdersQueryResponse{Orders: orders, Total: total}, nil
}

// buildFilters translates the query filters into a WHERE clause.
func buildFilters(query GetOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if externalID := query.ExternalID(); externalID != nil {
		conditions = append(conditions, "external_id = ?")
		args = append(args, *externalID)
	}

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *status)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
