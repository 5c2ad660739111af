// Package services contains stateless domain services that coordinate
// multiple aggregates for a single business operation.
//
// The package includes:
//   - StockAllocator: All-or-nothing stock reservation across the products of an order
//   - SaleRecorder: Building balanced journal entries for confirmed and cancelled sales
//
// Domain services hold no state and no infrastructure dependencies. They
// operate purely on aggregates passed in by the application layer, which is
// responsible for loading and persisting them within a transaction.
package services
