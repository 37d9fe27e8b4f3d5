package catalog_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid customer with all valid parameters", func(t *testing.T) {
		company := "Acme Ltd"
		c, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", &company,
			"+996700123456", decimal.NewFromInt(5), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Jane Smith", c.FullName())
		assert.Equal(t, "jane@example.com", c.Email())
		assert.Equal(t, "Acme Ltd", *c.CompanyName())
		assert.Equal(t, "+996700123456", c.Phone())
		assert.Equal(t, now, c.RegisteredAt())
		assert.True(t, c.DiscountPercent().Equal(decimal.NewFromInt(5)))
	})

	t.Run("should allow nil company name", func(t *testing.T) {
		c, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)

		require.NoError(t, err)
		assert.Nil(t, c.CompanyName())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := catalog.NewCustomer(invalidID, "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty full name", func(t *testing.T) {
		_, err := catalog.NewCustomer(validID, "", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "fullName")
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := catalog.NewCustomer(validID, "Jane Smith", "", nil,
			"+996700123456", decimal.Zero, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		_, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", nil,
			"", decimal.Zero, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should fail with negative discount", func(t *testing.T) {
		_, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.NewFromInt(-1), now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with discount above 100", func(t *testing.T) {
		_, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.NewFromInt(101), now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept boundary discounts", func(t *testing.T) {
		for _, percent := range []int64{0, 100} {
			c, err := catalog.NewCustomer(validID, "Jane Smith", "jane@example.com", nil,
				"+996700123456", decimal.NewFromInt(percent), now)

			require.NoError(t, err)
			assert.True(t, c.DiscountPercent().Equal(decimal.NewFromInt(percent)))
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := catalog.NewCustomer(invalidID, "", "", nil, "", decimal.NewFromInt(-5), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "fullName")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail validation for nil customer", func(t *testing.T) {
		var c *catalog.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrCustomerIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value customer", func(t *testing.T) {
		c := &catalog.Customer{}

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_ChangeDiscount(t *testing.T) {
	now := time.Now()
	newCustomer := func(t *testing.T) *catalog.Customer {
		t.Helper()
		c, err := catalog.NewCustomer(kernel.NewUUID(), "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)
		require.NoError(t, err)
		return c
	}

	t.Run("should change discount within range", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.ChangeDiscount(decimal.NewFromFloat(12.5)))
		assert.True(t, c.DiscountPercent().Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("should reject discount outside range and keep previous value", func(t *testing.T) {
		c := newCustomer(t)

		err := c.ChangeDiscount(decimal.NewFromInt(150))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, c.DiscountPercent().Equal(decimal.Zero))
	})
}

func TestCustomer_Update(t *testing.T) {
	now := time.Now()

	t.Run("should replace contact fields", func(t *testing.T) {
		c, err := catalog.NewCustomer(kernel.NewUUID(), "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)
		require.NoError(t, err)

		company := "New Co"
		err = c.Update("Jane Doe", "doe@example.com", &company, "+996700654321", decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.FullName())
		assert.Equal(t, "doe@example.com", c.Email())
		assert.Equal(t, "New Co", *c.CompanyName())
		assert.Equal(t, "+996700654321", c.Phone())
	})

	t.Run("should reject invalid update", func(t *testing.T) {
		c, err := catalog.NewCustomer(kernel.NewUUID(), "Jane Smith", "jane@example.com", nil,
			"+996700123456", decimal.Zero, now)
		require.NoError(t, err)

		err = c.Update("", "doe@example.com", nil, "+996700654321", decimal.Zero)

		require.Error(t, err)
	})
}
