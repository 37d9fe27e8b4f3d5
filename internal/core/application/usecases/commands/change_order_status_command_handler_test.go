package commands_test

import (
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testOrderFor(t *testing.T, product *catalog.Product, quantity int, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(product, quantity)
	require.NoError(t, err)
	now := time.Now()
	aggregate, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), status,
		decimal.NewFromInt(500), decimal.NewFromInt(12), []*order.Item{item}, now, now)
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_ConfirmDecrementsStock(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, decimal.NewFromInt(100), 5, true)
	aggregate := testOrderFor(t, product, 3, order.Draft)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, []kernel.UUID{product.ID()}).
			Return(map[kernel.UUID]*catalog.Product{product.ID(): product}, nil).Once(),
		productRepo.On("Update", mock.Anything, product).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockCommitService())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	assert.Equal(t, 2, product.StockQuantity())
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ReconfirmDoesNotTouchStock(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, decimal.NewFromInt(100), 2, true)
	aggregate := testOrderFor(t, product, 3, order.Confirmed)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockCommitService())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, product.StockQuantity())
	uow.AssertNotCalled(t, "ProductRepository")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InsufficientStockRollsBack(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, decimal.NewFromInt(100), 1, true)
	aggregate := testOrderFor(t, product, 3, order.Draft)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Confirmed)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByIDs", mock.Anything, mock.Anything).
			Return(map[kernel.UUID]*catalog.Product{product.ID(): product}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockCommitService())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, catalog.ErrInsufficientStock)
	assert.Equal(t, 1, product.StockQuantity())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, decimal.NewFromInt(100), 5, true)
	aggregate := testOrderFor(t, product, 1, order.Shipped)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockCommitService())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Shipped, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelConfirmedKeepsStock(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t, decimal.NewFromInt(100), 2, true)
	aggregate := testOrderFor(t, product, 2, order.Confirmed)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewStockCommitService())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	// cancelling never restocks
	assert.Equal(t, 2, product.StockQuantity())
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertExpectations(t)
}
