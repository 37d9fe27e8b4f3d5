// Package http exposes the application's commands and queries over a REST
// API. Handlers translate JSON contracts into commands and queries, hand them
// to the application layer, and map returned errors onto HTTP status codes.
package http

import (
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler    commands.CreateCustomerCommandHandler
	updateCustomerHandler    commands.UpdateCustomerCommandHandler
	deleteCustomerHandler    commands.DeleteCustomerCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCustomersHandler   queries.GetCustomersQueryHandler
	getProductsHandler    queries.GetProductsQueryHandler
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getSalesReportHandler queries.GetSalesReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getSalesReportHandler queries.GetSalesReportQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		updateCustomerHandler:    updateCustomerHandler,
		deleteCustomerHandler:    deleteCustomerHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCustomersHandler:      getCustomersHandler,
		getProductsHandler:       getProductsHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getSalesReportHandler:    getSalesReportHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/reports/sales", s.GetSalesReport)
}

// GetCustomers handles GET /api/v1/customers.
// Supports an optional company_name filter.
func (s *Server) GetCustomers(ctx echo.Context) error {
	var companyName *string
	if v := ctx.QueryParam("company_name"); v != "" {
		companyName = &v
	}

	query := queries.NewGetCustomersQuery(companyName)

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = CustomerResponse{
			ID:              customer.ID.Bytes(),
			FullName:        customer.FullName,
			Email:           customer.Email,
			CompanyName:     customer.CompanyName,
			Phone:           customer.Phone,
			DiscountPercent: customer.DiscountPercent,
			RegisteredAt:    customer.RegisteredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCustomerCommand(
		request.FullName,
		request.Email,
		request.CompanyName,
		request.Phone,
		request.DiscountPercent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CustomerID().Bytes()})
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer ID",
		})
	}

	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		request.FullName,
		request.Email,
		request.CompanyName,
		request.Phone,
		request.DiscountPercent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
// Deleting a customer referenced by orders returns 409.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer ID",
		})
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products.
// Supports optional is_active, name, min_price, and max_price filters.
func (s *Server) GetProducts(ctx echo.Context) error {
	var isActive *bool
	switch ctx.QueryParam("is_active") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	var nameContains *string
	if v := ctx.QueryParam("name"); v != "" {
		nameContains = &v
	}

	minPrice, err := parseDecimalParam(ctx.QueryParam("min_price"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid min_price",
		})
	}

	maxPrice, err := parseDecimalParam(ctx.QueryParam("max_price"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid max_price",
		})
	}

	query, err := queries.NewGetProductsQuery(isActive, nameContains, minPrice, maxPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = ProductResponse{
			ID:              product.ID.Bytes(),
			Name:            product.Name,
			Description:     product.Description,
			Price:           product.Price,
			StockQuantity:   product.StockQuantity,
			IsActive:        product.IsActive,
			DiscountPercent: product.DiscountPercent,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateProductCommand(
		request.Name,
		request.Description,
		request.Price,
		request.StockQuantity,
		request.IsActive,
		request.DiscountPercent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ProductID().Bytes()})
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		request.Name,
		request.Description,
		request.Price,
		request.StockQuantity,
		request.IsActive,
		request.DiscountPercent,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
// Deleting a product referenced by order lines returns 409.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
// Supports optional customer_id, status, created_from and created_to filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID *kernel.UUID
	if v := ctx.QueryParam("customer_id"); v != "" {
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid customer_id",
			})
		}
		customerID = &id
	}

	var status *order.Status
	if v := ctx.QueryParam("status"); v != "" {
		parsed, err := order.StatusFromString(v)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var createdFrom, createdTo *string
	if v := ctx.QueryParam("created_from"); v != "" {
		createdFrom = &v
	}
	if v := ctx.QueryParam("created_to"); v != "" {
		createdTo = &v
	}

	query, err := queries.NewGetOrdersQuery(customerID, status, createdFrom, createdTo)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:           o.ID.Bytes(),
			CustomerID:   o.CustomerID.Bytes(),
			Status:       o.Status,
			DeliveryCost: o.DeliveryCost,
			TaxPercent:   o.TaxPercent,
			ItemCount:    o.ItemCount,
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
// Places a new order, freezing item prices at the current catalog price.
// Orders start as drafts unless the payload requests another status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(request.CustomerID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer_id",
		})
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := parseStatusField(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, items, request.DeliveryCost, request.TaxPercent, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().Bytes()})
}

// GetOrder handles GET /api/v1/orders/:id.
// Totals in the response are computed live against the current catalog.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			ProductID: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:             result.ID.Bytes(),
		CustomerID:     result.CustomerID.Bytes(),
		Status:         result.Status,
		DeliveryCost:   result.DeliveryCost,
		TaxPercent:     result.TaxPercent,
		Items:          items,
		Subtotal:       result.Subtotal,
		TotalDiscounts: result.TotalDiscounts,
		TotalTax:       result.TotalTax,
		TotalDelivery:  result.TotalDelivery,
		TotalAmount:    result.TotalAmount,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id.
// Only draft orders can be edited; cancelled orders always return 409.
// A status in the payload moves the order after the edit is applied.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := toItemInputs(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := parseStatusField(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, items, request.DeliveryCost, request.TaxPercent, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
// Confirming an order decrements product stock exactly once.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSalesReport handles GET /api/v1/reports/sales.
// Accepts optional start and end dates in YYYY-MM-DD format, both inclusive.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	var start, end *string
	if v := ctx.QueryParam("start"); v != "" {
		start = &v
	}
	if v := ctx.QueryParam("end"); v != "" {
		end = &v
	}

	query, err := queries.NewGetSalesReportQuery(start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.getSalesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	topCustomers := make([]TopCustomerResponse, len(report.TopCustomers))
	for i, top := range report.TopCustomers {
		topCustomers[i] = TopCustomerResponse{
			CustomerID: top.CustomerID.Bytes(),
			TotalSpent: top.TotalSpent,
		}
	}

	var topProduct *uuid.UUID
	if report.TopProduct != nil {
		id := report.TopProduct.Bytes()
		topProduct = &id
	}

	return ctx.JSON(http.StatusOK, SalesReportResponse{
		Revenue:      report.Revenue,
		OrderCount:   report.OrderCount,
		TopCustomers: topCustomers,
		TopProduct:   topProduct,
	})
}

// toItemInputs converts the wire representation of order lines into command
// inputs.
func toItemInputs(requested []OrderItemRequest) ([]commands.OrderItemInput, error) {
	items := make([]commands.OrderItemInput, 0, len(requested))
	for _, line := range requested {
		productID, err := kernel.UUIDFromBytes(line.ProductID[:])
		if err != nil {
			return nil, err
		}

		item, err := commands.NewOrderItemInput(productID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// parseStatusField parses an optional status string from a request body.
func parseStatusField(raw *string) (*order.Status, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := order.StatusFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// parseDecimalParam parses an optional decimal query parameter.
func parseDecimalParam(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
