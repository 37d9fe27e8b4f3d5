package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func mustItemInput(t *testing.T, quantity int) commands.OrderItemInput {
	t.Helper()
	input, err := commands.NewOrderItemInput(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return input
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	items := []commands.OrderItemInput{mustItemInput(t, 1), mustItemInput(t, 2)}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, items, decimalPtr(500), decimalPtr(12), nil)

	require.NoError(t, err)
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Equal(t, items, cmd.Items())
	assert.True(t, cmd.DeliveryCost().Equal(decimal.NewFromInt(500)))
	assert.True(t, cmd.TaxPercent().Equal(decimal.NewFromInt(12)))
	assert.NoError(t, cmd.OrderID().Validate())
	assert.Equal(t, order.Draft, cmd.Status())
}

func TestNewCreateOrderCommand_OmittedChargesUseDefaults(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []commands.OrderItemInput{mustItemInput(t, 1)}, nil, nil, nil)

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryCost().Equal(order.DefaultDeliveryCost))
	assert.True(t, cmd.TaxPercent().Equal(order.DefaultTaxPercent))
}

func TestNewCreateOrderCommand_ExplicitZeroChargesAreKept(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []commands.OrderItemInput{mustItemInput(t, 1)},
		decimalPtr(0), decimalPtr(0), nil)

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryCost().IsZero())
	assert.True(t, cmd.TaxPercent().IsZero())
}

func TestNewCreateOrderCommand_ExplicitInitialStatus(t *testing.T) {
	confirmed := order.Confirmed

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []commands.OrderItemInput{mustItemInput(t, 1)},
		nil, nil, &confirmed)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, cmd.Status())
}

func TestNewCreateOrderCommand_InvalidInitialStatus(t *testing.T) {
	var invalid order.Status

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []commands.OrderItemInput{mustItemInput(t, 1)},
		nil, nil, &invalid)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewCreateOrderCommand(
		invalidID, []commands.OrderItemInput{mustItemInput(t, 1)}, nil, nil, nil)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnconstructedItem(t *testing.T) {
	items := []commands.OrderItemInput{{}}

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), items, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemInputIsNotConstructed)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
