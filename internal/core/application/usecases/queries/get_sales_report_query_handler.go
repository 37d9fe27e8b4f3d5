package queries

import (
	"context"
	"log/slog"
	"sort"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesReportQueryHandler aggregates confirmed orders into a sales report.
//
// Revenue is the sum of each order's live-computed total, so the report
// reflects the current catalog discounts, exactly like the single-order view.
// An order whose totals cannot be computed (its customer or a product row
// has gone bad) is logged and skipped; one broken order never aborts the
// whole report.
type GetSalesReportQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetSalesReportQueryHandler creates a handler for sales report queries.
func NewGetSalesReportQueryHandler(db *gorm.DB, logger *slog.Logger) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db, logger: logger}
}

// Handle executes the report aggregation.
//
// Ranking rules: top customers are ordered by total spent descending, ties
// broken by ascending customer ID; the top product is the one with the
// highest summed quantity, ties broken by lowest product ID. Both rules are
// deterministic so repeated runs over the same data agree.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	filterSQL := ` WHERE status = ?`
	args := []any{order.Confirmed.String()}
	if query.Start() != nil {
		filterSQL += ` AND created_at::date >= ?`
		args = append(args, query.Start().Format(dateLayout))
	}
	if query.End() != nil {
		filterSQL += ` AND created_at::date <= ?`
		args = append(args, query.End().Format(dateLayout))
	}

	aggregates, err := loadOrderAggregates(ctx, h.db, filterSQL, args...)
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}
	if len(aggregates) == 0 {
		return GetSalesReportQueryResponse{}, NewNoDataError(query.Start(), query.End())
	}

	revenue := decimal.Zero
	orderCount := 0
	spentByCustomer := make(map[kernel.UUID]decimal.Decimal)
	quantityByProduct := make(map[kernel.UUID]int)

	for _, aggregate := range aggregates {
		totals, totalsErr := h.orderTotals(ctx, aggregate)
		if totalsErr != nil {
			h.logger.Warn("skipping order in sales report",
				"order_id", aggregate.ID().String(),
				"error", totalsErr)
			continue
		}

		revenue = revenue.Add(totals.TotalAmount)
		orderCount++

		customerID := aggregate.CustomerID()
		spentByCustomer[customerID] = spentByCustomer[customerID].Add(totals.TotalAmount)

		for _, item := range aggregate.Items() {
			quantityByProduct[item.ProductID()] += item.Quantity()
		}
	}

	if orderCount == 0 {
		return GetSalesReportQueryResponse{}, NewNoDataError(query.Start(), query.End())
	}

	return GetSalesReportQueryResponse{
		Revenue:      revenue,
		OrderCount:   orderCount,
		TopCustomers: rankCustomers(spentByCustomer),
		TopProduct:   topProduct(quantityByProduct),
	}, nil
}

func (h GetSalesReportQueryHandler) orderTotals(
	ctx context.Context,
	aggregate *order.Order,
) (order.Totals, error) {
	customer, err := loadCustomerAggregate(ctx, h.db, aggregate.CustomerID())
	if err != nil {
		return order.Totals{}, err
	}

	products, err := loadProductAggregates(ctx, h.db, productIDsOf(aggregate))
	if err != nil {
		return order.Totals{}, err
	}

	return order.CalculateTotals(aggregate, customer, products)
}

// rankCustomers returns at most five customers by total spent descending,
// ascending customer ID on equal spend.
func rankCustomers(spentByCustomer map[kernel.UUID]decimal.Decimal) []TopCustomer {
	ranking := make([]TopCustomer, 0, len(spentByCustomer))
	for customerID, totalSpent := range spentByCustomer {
		ranking = append(ranking, TopCustomer{CustomerID: customerID, TotalSpent: totalSpent})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].TotalSpent.Equal(ranking[j].TotalSpent) {
			return ranking[i].TotalSpent.GreaterThan(ranking[j].TotalSpent)
		}
		return ranking[i].CustomerID.String() < ranking[j].CustomerID.String()
	})

	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

// topProduct returns the product with the highest summed quantity, lowest
// product ID on ties, or nil when no quantities were aggregated.
func topProduct(quantityByProduct map[kernel.UUID]int) *kernel.UUID {
	var best *kernel.UUID
	bestQuantity := 0

	for productID, quantity := range quantityByProduct {
		if best == nil ||
			quantity > bestQuantity ||
			(quantity == bestQuantity && productID.String() < best.String()) {
			id := productID
			best = &id
			bestQuantity = quantity
		}
	}

	return best
}
