package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves the product catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product listing queries.
// Requires a GORM database connection for query execution.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products.
// Returns a slice of product read models sorted by SKU.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ListProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			price,
			cost_price,
			stock
		FROM products
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response ListProductsQueryResponse
		var id uuid.UUID
		var price, costPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&response.Sku,
			&response.Name,
			&price,
			&costPrice,
			&response.Stock,
		)
		if err != nil {
			return nil, err
		}

		responseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = responseID

		responsePrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		response.Price = responsePrice

		responseCost, costErr := kernel.NewMoney(costPrice)
		if costErr != nil {
			return nil, costErr
		}
		response.CostPrice = responseCost

		products = append(products, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
