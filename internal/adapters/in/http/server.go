// Package http exposes the storefront API over HTTP using the echo framework.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server handles HTTP requests for the storefront API.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler
	createProductHandler   commands.CreateProductCommandHandler
	restockProductHandler  commands.RestockProductCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	listProductsHandler    queries.ListProductsQueryHandler
	getTrialBalanceHandler queries.GetTrialBalanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getTrialBalanceHandler queries.GetTrialBalanceQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		confirmOrderHandler:    confirmOrderHandler,
		shipOrderHandler:       shipOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		addOrderItemHandler:    addOrderItemHandler,
		removeOrderItemHandler: removeOrderItemHandler,
		createProductHandler:   createProductHandler,
		restockProductHandler:  restockProductHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		listProductsHandler:    listProductsHandler,
		getTrialBalanceHandler: getTrialBalanceHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/items", s.AddOrderItem)
	api.DELETE("/orders/:orderId/items/:productId", s.RemoveOrderItem)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.POST("/products/:productId/restock", s.RestockProduct)

	api.GET("/ledger/trial-balance", s.GetTrialBalance)

	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPISchema)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product ID: "+item.ProductID)
		}

		unitPrice, err := kernel.NewMoneyFromString(item.UnitPrice)
		if err != nil {
			return badRequest(ctx, "Invalid unit price: "+item.UnitPrice)
		}

		line, err := commands.NewOrderLine(productID, item.Quantity, unitPrice)
		if err != nil {
			return badRequest(ctx, "Invalid order line: "+err.Error())
		}
		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.CustomerID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(result))
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally by status.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter(
		"form", true, false, "status", ctx.QueryParams(), &status,
	); err != nil {
		return badRequest(ctx, "Invalid status parameter")
	}

	query := queries.NewListOrdersQuery()
	if status != nil && *status != "" {
		parsed, err := order.StatusFromString(*status)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+*status)
		}

		query, err = queries.NewListOrdersQueryWithStatus(parsed)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+*status)
		}
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromReadModel(result))
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
// Confirmation reserves stock and posts the sale to the ledger atomically.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewShipOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
// Cancelling a confirmed order releases its stock and reverses the sale posting.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// transitionOrder parses the order ID, runs the transition and maps the result.
func (s *Server) transitionOrder(ctx echo.Context, transition func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if err = transition(orderID); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:orderId/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product ID: "+body.ProductID)
	}

	unitPrice, err := kernel.NewMoneyFromString(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+body.UnitPrice)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, body.Quantity, unitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:productId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, productID)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products - creates a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+body.Price)
	}

	costPrice, err := kernel.NewMoneyFromString(body.CostPrice)
	if err != nil {
		return badRequest(ctx, "Invalid cost price: "+body.CostPrice)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, body.Sku, body.Name, price, costPrice, body.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: productID.String()})
}

// ListProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromReadModel(result))
}

// RestockProduct handles POST /api/v1/products/:productId/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var body Restock
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(productID, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid restock data: "+err.Error())
	}

	if handleErr := s.restockProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrialBalance handles GET /api/v1/ledger/trial-balance.
func (s *Server) GetTrialBalance(ctx echo.Context) error {
	result, err := s.getTrialBalanceHandler.Handle(ctx.Request().Context(), queries.NewGetTrialBalanceQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trialBalanceFromReadModel(result))
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes.
// Unknown orders or products map to 404, rejected lifecycle transitions and
// stock shortages to 409, and validation failures to 400.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, product.ErrInsufficientStock):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
