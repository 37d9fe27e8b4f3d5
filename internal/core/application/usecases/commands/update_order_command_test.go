package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	items := []commands.OrderItemInput{mustItemInput(t, 2)}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items, decimalPtr(600), decimalPtr(15), nil)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, items, cmd.Items())
	assert.True(t, cmd.DeliveryCost().Equal(decimal.NewFromInt(600)))
	assert.True(t, cmd.TaxPercent().Equal(decimal.NewFromInt(15)))
	assert.Nil(t, cmd.Status())
}

func TestNewUpdateOrderCommand_OmittedChargesUseDefaults(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(
		kernel.NewUUID(), []commands.OrderItemInput{mustItemInput(t, 1)}, nil, nil, nil)

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryCost().Equal(order.DefaultDeliveryCost))
	assert.True(t, cmd.TaxPercent().Equal(order.DefaultTaxPercent))
}

func TestNewUpdateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), nil, nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}
