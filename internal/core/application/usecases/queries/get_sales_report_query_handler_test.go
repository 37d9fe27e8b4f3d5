package queries_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"sales/internal/adapters/out/postgres/customerrepo"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/productrepo"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetSalesReportQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetSalesReportQueryHandler
	customerRepo *customerrepo.GormCustomerRepository
	productRepo  *productrepo.GormProductRepository
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *GetSalesReportQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetSalesReportQueryHandler(db, slog.Default())
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetSalesReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSalesReportQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, products, orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsNoDataError() {
	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrNoData)
	var noData *queries.NoDataError
	suite.Require().ErrorAs(err, &noData)
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_OnlyDraftAndCancelledOrders_ReturnsNoDataError() {
	ctx := context.Background()
	customer := suite.seedCustomer("Ada Lovelace", decimal.Zero)
	product := suite.seedProduct(decimal.NewFromInt(2500), decimal.Zero)

	suite.seedOrder(customer, order.Draft, suite.day("2026-03-10"), saleLine{product, 1})
	suite.seedOrder(customer, order.Cancelled, suite.day("2026-03-11"), saleLine{product, 1})

	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, queries.ErrNoData)
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_SingleConfirmedOrder_ComputesRevenue() {
	ctx := context.Background()
	customer := suite.seedCustomer("Ada Lovelace", decimal.Zero)
	// Subtotal 2500: above the free-delivery threshold, no discounts, no tax.
	product := suite.seedProduct(decimal.NewFromInt(2500), decimal.Zero)

	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-10"), saleLine{product, 1})

	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(1, report.OrderCount)
	suite.True(decimal.NewFromInt(2500).Equal(report.Revenue),
		"expected revenue 2500, got %s", report.Revenue)
	suite.Require().Len(report.TopCustomers, 1)
	suite.Equal(customer.ID(), report.TopCustomers[0].CustomerID)
	suite.Require().NotNil(report.TopProduct)
	suite.Equal(product.ID(), *report.TopProduct)
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_DateRange_FiltersInclusively() {
	ctx := context.Background()
	customer := suite.seedCustomer("Ada Lovelace", decimal.Zero)
	product := suite.seedProduct(decimal.NewFromInt(2500), decimal.Zero)

	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-09"), saleLine{product, 1})
	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-10"), saleLine{product, 1})
	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-12"), saleLine{product, 1})

	start := "2026-03-10"
	end := "2026-03-12"
	query, err := queries.NewGetSalesReportQuery(&start, &end)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	// Both boundary days count; the order from the 9th does not.
	suite.Equal(2, report.OrderCount)
	suite.True(decimal.NewFromInt(5000).Equal(report.Revenue))
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_TopCustomers_RankedBySpendThenID() {
	ctx := context.Background()
	product := suite.seedProduct(decimal.NewFromInt(2500), decimal.Zero)

	// Six customers so the ranking must truncate to five. Two of them spend
	// the same amount to exercise the ascending-ID tie break.
	var customers []*catalog.Customer
	for i := range 6 {
		customers = append(customers, suite.seedCustomer(fmt.Sprintf("Customer %d", i), decimal.Zero))
	}

	// customers[0] spends the most, customers[1] and customers[2] tie,
	// the rest trail off; customers[5] buys the least and must drop out.
	quantities := []int{5, 3, 3, 2, 2, 1}
	extra := []int{0, 0, 0, 1, 0, 0} // customers[3] gets a second order
	for i, customer := range customers {
		suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-10"),
			saleLine{product, quantities[i]})
		if extra[i] > 0 {
			suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-11"),
				saleLine{product, extra[i]})
		}
	}

	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(report.TopCustomers, 5)
	suite.Equal(customers[0].ID(), report.TopCustomers[0].CustomerID)

	// customers[3] spent 3 orders worth in total, tying the 3-quantity pair.
	tied := []string{
		customers[1].ID().String(),
		customers[2].ID().String(),
		customers[3].ID().String(),
	}
	got := []string{
		report.TopCustomers[1].CustomerID.String(),
		report.TopCustomers[2].CustomerID.String(),
		report.TopCustomers[3].CustomerID.String(),
	}
	suite.ElementsMatch(tied, got)
	suite.True(got[0] < got[1] && got[1] < got[2], "ties must rank by ascending customer ID")

	// The lowest spender among the remaining pair fills the fifth slot.
	suite.Equal(customers[4].ID(), report.TopCustomers[4].CustomerID)

	for _, top := range report.TopCustomers {
		suite.False(top.TotalSpent.IsZero())
	}
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_TopProduct_ByQuantityThenLowestID() {
	ctx := context.Background()
	customer := suite.seedCustomer("Ada Lovelace", decimal.Zero)
	cheap := suite.seedProduct(decimal.NewFromInt(10), decimal.Zero)
	expensive := suite.seedProduct(decimal.NewFromInt(5000), decimal.Zero)

	// cheap sells 7 units across two orders, expensive only 2. Quantity wins
	// regardless of revenue.
	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-10"),
		saleLine{cheap, 4}, saleLine{expensive, 2})
	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-11"),
		saleLine{cheap, 3})

	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().NotNil(report.TopProduct)
	suite.Equal(cheap.ID(), *report.TopProduct)
}

func (suite *GetSalesReportQueryHandlerTestSuite) TestHandle_OrderWithMissingCustomer_IsSkipped() {
	ctx := context.Background()
	customer := suite.seedCustomer("Ada Lovelace", decimal.Zero)
	product := suite.seedProduct(decimal.NewFromInt(2500), decimal.Zero)

	suite.seedOrder(customer, order.Confirmed, suite.day("2026-03-10"), saleLine{product, 1})

	// An order pointing at a customer that no longer exists must not sink
	// the whole report.
	orphan := suite.buildOrder(kernel.NewUUID(), order.Confirmed, suite.day("2026-03-10"),
		saleLine{product, 1})
	suite.Require().NoError(suite.orderRepo.Add(ctx, orphan))

	query, err := queries.NewGetSalesReportQuery(nil, nil)
	suite.Require().NoError(err)

	report, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(1, report.OrderCount)
	suite.True(decimal.NewFromInt(2500).Equal(report.Revenue))
}

// saleLine pairs a product with the quantity ordered.
type saleLine struct {
	product  *catalog.Product
	quantity int
}

func (suite *GetSalesReportQueryHandlerTestSuite) day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	suite.Require().NoError(err)
	return t.Add(12 * time.Hour) // midday, well inside the date
}

func (suite *GetSalesReportQueryHandlerTestSuite) seedCustomer(
	name string, discountPercent decimal.Decimal,
) *catalog.Customer {
	id := kernel.NewUUID()
	customer, err := catalog.NewCustomer(
		id,
		name,
		fmt.Sprintf("%s@example.com", id.String()),
		nil,
		"+1-555-0100",
		discountPercent,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), customer))
	return customer
}

func (suite *GetSalesReportQueryHandlerTestSuite) seedProduct(
	price decimal.Decimal, discountPercent decimal.Decimal,
) *catalog.Product {
	product, err := catalog.NewProduct(
		kernel.NewUUID(),
		"Test Product",
		"",
		price,
		1000,
		true,
		discountPercent,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), product))
	return product
}

func (suite *GetSalesReportQueryHandlerTestSuite) buildOrder(
	customerID kernel.UUID, status order.Status, createdAt time.Time, lines ...saleLine,
) *order.Order {
	var items []*order.Item
	for _, line := range lines {
		item, err := order.NewItem(line.product, line.quantity)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		status,
		decimal.Zero,
		decimal.Zero,
		items,
		createdAt,
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *GetSalesReportQueryHandlerTestSuite) seedOrder(
	customer *catalog.Customer, status order.Status, createdAt time.Time, lines ...saleLine,
) *order.Order {
	testOrder := suite.buildOrder(customer.ID(), status, createdAt, lines...)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGetSalesReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSalesReportQueryHandlerTestSuite))
}
