package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves the full product catalog.
//
// Example:
//
//	query := NewListProductsQuery()
//	handler := NewListProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s %s: %s (%d in stock)\n", p.Sku, p.Name, p.Price, p.Stock)
//	}
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query to retrieve all products.
// This is a parameterless query that fetches the complete catalog.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListProductsQueryIsNotConstructed if validation fails.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ListProductsQueryResponse represents product information in the read model.
type ListProductsQueryResponse struct {
	ID        kernel.UUID
	Sku       string
	Name      string
	Price     kernel.Money
	CostPrice kernel.Money
	Stock     int
}
