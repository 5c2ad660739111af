package queries

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, err := NewListOrdersQueryWithStatus(order.Created)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve order summaries.
// Returns a slice of order read models in creation order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.listRows(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response ListOrdersQueryResponse
		var id uuid.UUID
		var total decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&response.CustomerID,
			&response.Status,
			&total,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		responseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = responseID

		responseTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		response.Total = responseTotal
		response.CreatedAt = createdAt.UTC()

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) listRows(ctx context.Context, query ListOrdersQuery) (*sql.Rows, error) {
	const listSQL = `
		SELECT
			o.id,
			o.customer_id,
			o.status,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
	`
	const groupSQL = `
		GROUP BY o.id, o.customer_id, o.status, o.created_at
		ORDER BY o.created_at
	`

	if query.HasStatusFilter() {
		return h.db.WithContext(ctx).
			Raw(listSQL+` WHERE o.status = ? `+groupSQL, query.Status().String()).
			Rows()
	}

	return h.db.WithContext(ctx).Raw(listSQL + groupSQL).Rows()
}
