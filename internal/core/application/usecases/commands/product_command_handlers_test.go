package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "SKU-001", "Widget",
		mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
			return p.Sku() == "SKU-001" && p.Stock() == 100
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewCreateProductCommand_Validation(t *testing.T) {
	t.Run("should fail with empty sku", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), 100)

		require.ErrorIs(t, err, commands.ErrSkuIsRequired)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "SKU-001", "Widget",
			mustMoney(t, "5.00"), mustMoney(t, "3.00"), -1)

		require.ErrorIs(t, err, commands.ErrStockIsInvalid)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreateProductCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateProductCommandIsNotConstructed)
	})
}

func TestRestockProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := makeTestProduct(t, 10)
	cmd, err := commands.NewRestockProductCommand(p.ID(), 40)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{p.ID()}).
			Return([]*product.Product{p}, nil).Once(),
		productRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestockProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRestockProductCommand_Validation(t *testing.T) {
	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewRestockProductCommand(kernel.NewUUID(), 0)

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail with invalid product ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewRestockProductCommand(invalidID, 5)

		require.Error(t, err)
	})
}
