package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// Error is the wire representation of an API error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLine is one product line in an order creation request.
// The unit price is the agreed selling price as a decimal string.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	CustomerID string      `json:"customerId"`
	Items      []OrderLine `json:"items"`
}

// NewOrderItem is the request body for adding a line to an order.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// NewProduct is the request body for creating a catalog product.
// Monetary amounts travel as decimal strings to avoid float rounding.
type NewProduct struct {
	Sku       string `json:"sku"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	CostPrice string `json:"costPrice"`
	Stock     int    `json:"stock"`
}

// Restock is the request body for adding stock to a product.
type Restock struct {
	Quantity int `json:"quantity"`
}

// Created is the response body for resource creation.
type Created struct {
	ID string `json:"id"`
}

// OrderItem is the wire representation of one order line.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// Order is the wire representation of a full order.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	Total      string      `json:"total"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderSummary is the wire representation of an order in list responses.
type OrderSummary struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Product is the wire representation of a catalog product.
type Product struct {
	ID        string `json:"id"`
	Sku       string `json:"sku"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	CostPrice string `json:"costPrice"`
	Stock     int    `json:"stock"`
}

// TrialBalanceRow is one account line in the trial balance response.
type TrialBalanceRow struct {
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// TrialBalance is the wire representation of the ledger trial balance.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  string            `json:"totalDebits"`
	TotalCredits string            `json:"totalCredits"`
	Balanced     bool              `json:"balanced"`
}

func orderFromReadModel(model *queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		})
	}

	return Order{
		ID:         model.ID.String(),
		CustomerID: model.CustomerID,
		Status:     model.Status,
		Items:      items,
		Total:      model.Total.String(),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func orderSummariesFromReadModel(models []queries.ListOrdersQueryResponse) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(models))
	for _, model := range models {
		summaries = append(summaries, OrderSummary{
			ID:         model.ID.String(),
			CustomerID: model.CustomerID,
			Status:     model.Status,
			Total:      model.Total.String(),
			CreatedAt:  model.CreatedAt,
		})
	}
	return summaries
}

func productsFromReadModel(models []queries.ListProductsQueryResponse) []Product {
	products := make([]Product, 0, len(models))
	for _, model := range models {
		products = append(products, Product{
			ID:        model.ID.String(),
			Sku:       model.Sku,
			Name:      model.Name,
			Price:     model.Price.String(),
			CostPrice: model.CostPrice.String(),
			Stock:     model.Stock,
		})
	}
	return products
}

func trialBalanceFromReadModel(model *queries.GetTrialBalanceQueryResponse) TrialBalance {
	rows := make([]TrialBalanceRow, 0, len(model.Rows))
	for _, row := range model.Rows {
		rows = append(rows, TrialBalanceRow{
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       row.Debit.String(),
			Credit:      row.Credit.String(),
		})
	}

	return TrialBalance{
		Rows:         rows,
		TotalDebits:  model.TotalDebits.String(),
		TotalCredits: model.TotalCredits.String(),
		Balanced:     model.IsBalanced,
	}
}
