package queries

import (
	"context"
	"database/sql"

	"orders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// loadDetails fetches the order lines for the given order identifiers,
// grouped per order and sorted by line identifier.
func loadDetails(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]DetailResponse, error) {
	details := make(map[int64][]DetailResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return details, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.amount,
			d.price,
			p.id,
			p.name
		FROM order_details d
		JOIN products p ON p.id = d.product_id
		WHERE d.order_id IN ?
		ORDER BY d.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail DetailResponse
		var orderID int64
		var amount sql.NullInt64
		var price sql.NullString

		err = rows.Scan(
			&detail.ID,
			&orderID,
			&amount,
			&price,
			&detail.Product.ID,
			&detail.Product.Name,
		)
		if err != nil {
			return nil, err
		}

		if amount.Valid {
			value := int(amount.Int64)
			detail.Amount = &value
		}

		if price.Valid {
			parsed, priceErr := kernel.NewPriceFromString(price.String)
			if priceErr != nil {
				return nil, priceErr
			}
			detail.Price = &parsed
		}

		details[orderID] = append(details[orderID], detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
