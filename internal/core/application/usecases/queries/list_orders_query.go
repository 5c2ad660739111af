package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders, optionally restricted to a single status.
// Without a status filter every order is returned, in creation order.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s (%s) totals %s\n", o.ID, o.Status, o.Total)
//	}
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query that retrieves all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersQueryWithStatus creates a query restricted to orders
// in the given status.
func NewListOrdersQueryWithStatus(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter. The zero status means no filter.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// HasStatusFilter reports whether the query restricts results to one status.
func (q ListOrdersQuery) HasStatusFilter() bool {
	return q.status != order.Unknown
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse represents order summary information in the read model.
// The total is computed from the captured line item prices.
type ListOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID string
	Status     string
	Total      kernel.Money
	CreatedAt  time.Time
}
