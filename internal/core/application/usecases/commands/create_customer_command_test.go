package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	company := "Initech"

	cmd, err := commands.NewCreateCustomerCommand(
		"Jane Smith", "jane@initech.test", &company, "+15551234567", decimal.NewFromInt(5))

	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, "Jane Smith", cmd.FullName())
	assert.Equal(t, "jane@initech.test", cmd.Email())
	assert.Equal(t, &company, cmd.CompanyName())
	assert.Equal(t, "+15551234567", cmd.Phone())
	assert.True(t, cmd.DiscountPercent().Equal(decimal.NewFromInt(5)))
	assert.NoError(t, cmd.CustomerID().Validate())
}

func TestNewCreateCustomerCommand_PrivateCustomerWithoutCompany(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand(
		"John Doe", "john@example.test", nil, "+15550000000", decimal.Zero)

	require.NoError(t, err)
	assert.Nil(t, cmd.CompanyName())
}

func TestNewCreateCustomerCommand_MissingRequiredFields(t *testing.T) {
	testCases := []struct {
		name     string
		fullName string
		email    string
		phone    string
		wantErr  error
	}{
		{name: "empty full name", fullName: "", email: "a@b.test", phone: "+1555", wantErr: commands.ErrFullNameIsRequired},
		{name: "empty email", fullName: "Jane", email: "", phone: "+1555", wantErr: commands.ErrEmailIsRequired},
		{name: "empty phone", fullName: "Jane", email: "a@b.test", phone: "", wantErr: commands.ErrPhoneIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateCustomerCommand(
				tc.fullName, tc.email, nil, tc.phone, decimal.Zero)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCreateCustomerCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand("", "", nil, "", decimal.Zero)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "full name is required")
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "phone is required")
}

func TestCreateCustomerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCustomerCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
