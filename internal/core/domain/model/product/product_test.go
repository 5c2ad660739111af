package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func makeProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Widget",
		mustMoney(t, "5.00"), mustMoney(t, "3.00"), stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, "SKU-001", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "SKU-001", p.Sku())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, "5.00", p.Price().String())
		assert.Equal(t, "3.00", p.CostPrice().String())
		assert.Equal(t, 100, p.Stock())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "SKU-001", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty sku", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "sku")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "SKU-001", "",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "SKU-001", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), -1)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is less than 0")
	})

	t.Run("should accept zero stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "SKU-001", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "", "",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), -5)

		require.Error(t, err)
		assert.Nil(t, p)
		// Should contain all validation errors joined
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "sku")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "stock")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed product", func(t *testing.T) {
		p := makeProduct(t, 10)

		require.NoError(t, p.Validate())
	})

	t.Run("should fail validation for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated product", func(t *testing.T) {
		p := &product.Product{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_CanReserve(t *testing.T) {
	t.Run("should report true when stock covers quantity", func(t *testing.T) {
		p := makeProduct(t, 10)

		ok, err := p.CanReserve(10)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should report false when quantity exceeds stock", func(t *testing.T) {
		p := makeProduct(t, 10)

		ok, err := p.CanReserve(11)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		p := makeProduct(t, 10)

		_, err := p.CanReserve(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should reduce stock on successful reservation", func(t *testing.T) {
		p := makeProduct(t, 10)

		err := p.Reserve(3)

		require.NoError(t, err)
		assert.Equal(t, 7, p.Stock())
	})

	t.Run("should reserve the entire stock", func(t *testing.T) {
		p := makeProduct(t, 10)

		err := p.Reserve(10)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should fail and keep stock unchanged when quantity exceeds stock", func(t *testing.T) {
		p := makeProduct(t, 5)

		err := p.Reserve(6)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "product SKU-001 has 5 of 6 requested")
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		p := makeProduct(t, 5)

		err := p.Reserve(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_Restock(t *testing.T) {
	t.Run("should increase stock", func(t *testing.T) {
		p := makeProduct(t, 5)

		err := p.Restock(7)

		require.NoError(t, err)
		assert.Equal(t, 12, p.Stock())
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		p := makeProduct(t, 5)

		err := p.Restock(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("should return reserved stock after cancellation", func(t *testing.T) {
		p := makeProduct(t, 10)
		require.NoError(t, p.Reserve(4))

		err := p.Restock(4)

		require.NoError(t, err)
		assert.Equal(t, 10, p.Stock())
	})
}
