package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// CustomerRequest is the payload for creating or updating a customer.
type CustomerRequest struct {
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	CompanyName     *string         `json:"company_name,omitempty"`
	Phone           string          `json:"phone"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// CustomerResponse is one customer in the read model.
type CustomerResponse struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	CompanyName     *string         `json:"company_name,omitempty"`
	Phone           string          `json:"phone"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	RegisteredAt    time.Time       `json:"registered_at"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        bool            `json:"is_active"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// ProductResponse is one product in the read model.
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        bool            `json:"is_active"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CreateOrderRequest is the payload for placing a new order. Status is
// optional and defaults to draft; omitted charges fall back to the default
// delivery cost and tax percent.
type CreateOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customer_id"`
	Items        []OrderItemRequest `json:"items"`
	DeliveryCost *decimal.Decimal   `json:"delivery_cost,omitempty"`
	TaxPercent   *decimal.Decimal   `json:"tax_percent,omitempty"`
	Status       *string            `json:"status,omitempty"`
}

// UpdateOrderRequest is the payload for editing a draft order. Status is
// optional; when present the order moves to it in the same transaction.
// Omitted charges fall back to the defaults, as on placement.
type UpdateOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	DeliveryCost *decimal.Decimal   `json:"delivery_cost,omitempty"`
	TaxPercent   *decimal.Decimal   `json:"tax_percent,omitempty"`
	Status       *string            `json:"status,omitempty"`
}

// ChangeOrderStatusRequest is the payload for moving an order through its
// lifecycle.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummaryResponse is one order in the collection read model.
type OrderSummaryResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	Status       string          `json:"status"`
	DeliveryCost decimal.Decimal `json:"delivery_cost"`
	TaxPercent   decimal.Decimal `json:"tax_percent"`
	ItemCount    int             `json:"item_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OrderItemResponse is one line of a detailed order.
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the detailed order read model with live-computed totals.
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	Status         string              `json:"status"`
	DeliveryCost   decimal.Decimal     `json:"delivery_cost"`
	TaxPercent     decimal.Decimal     `json:"tax_percent"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	TotalDiscounts decimal.Decimal     `json:"total_discounts"`
	TotalTax       decimal.Decimal     `json:"total_tax"`
	TotalDelivery  decimal.Decimal     `json:"total_delivery"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TopCustomerResponse is one row of the sales report customer ranking.
type TopCustomerResponse struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// SalesReportResponse is the aggregated sales report payload.
type SalesReportResponse struct {
	Revenue      decimal.Decimal       `json:"revenue"`
	OrderCount   int                   `json:"order_count"`
	TopCustomers []TopCustomerResponse `json:"top_customers"`
	TopProduct   *uuid.UUID            `json:"top_product,omitempty"`
}
