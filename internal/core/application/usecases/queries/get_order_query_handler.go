package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its items from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns *errs.ObjectNotFoundError if no order exists with the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	items, total, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	response.Items = items
	response.Total = total

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	var response GetOrderQueryResponse
	var id uuid.UUID
	var createdAt, updatedAt time.Time

	err = rows.Scan(
		&id,
		&response.CustomerID,
		&response.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	responseID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	response.ID = responseID
	response.CreatedAt = createdAt.UTC()
	response.UpdatedAt = updatedAt.UTC()

	return &response, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, kernel.Money, error) {
	items := make([]GetOrderItemResponse, 0)
	total := kernel.ZeroMoney()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, total, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var productID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&productID,
			&item.Quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, total, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, total, idErr
		}
		item.ProductID = itemProductID

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, total, priceErr
		}
		item.UnitPrice = price
		item.Subtotal = price.Mul(item.Quantity)

		total = total.Add(item.Subtotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, total, err
	}

	return items, total, nil
}
