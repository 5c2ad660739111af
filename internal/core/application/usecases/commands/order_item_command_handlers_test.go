package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := makeTestProduct(t, 10)
	o := makeTestOrder(t, existing, 1)
	added := makeTestProduct(t, 10)
	// Discounted against the 5.00 catalog price: the request price wins.
	cmd, _ := commands.NewAddOrderItemCommand(o.ID(), added.ID(), 2, mustMoney(t, "4.50"))

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, added.ID()).Return(added, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, o.Items(), 2)
	assert.Equal(t, "14.00", o.Total().String())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_ConfirmedOrder(t *testing.T) {
	ctx := t.Context()
	existing := makeTestProduct(t, 10)
	o := makeTestOrder(t, existing, 1)
	require.NoError(t, o.Confirm())
	added := makeTestProduct(t, 10)
	cmd, _ := commands.NewAddOrderItemCommand(o.ID(), added.ID(), 2, mustMoney(t, "5.00"))

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, added.ID()).Return(added, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Len(t, o.Items(), 1)
	uow.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := makeTestProduct(t, 10)
	o := makeTestOrder(t, p, 1)
	cmd, _ := commands.NewRemoveOrderItemCommand(o.ID(), p.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Empty(t, o.Items())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderItemCommandHandler_Handle_MissingLine(t *testing.T) {
	ctx := t.Context()
	p := makeTestProduct(t, 10)
	o := makeTestOrder(t, p, 1)
	cmd, _ := commands.NewRemoveOrderItemCommand(o.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Len(t, o.Items(), 1)
	uow.AssertExpectations(t)
}
