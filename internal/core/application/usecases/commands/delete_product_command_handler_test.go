package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_ReferencedProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, productID).
			Return(errs.NewObjectIsReferencedError("product", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectIsReferenced)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
