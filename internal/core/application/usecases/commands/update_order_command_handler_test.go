package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateOrderCmd(t *testing.T, id kernel.ID, number string) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(
		id, number, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), "Globex Corp", 31500, "SHIPPED",
	)
	require.NoError(t, err)
	return cmd
}

func restoreOrderWithShipmentFixture(t *testing.T, id int64, number string, shipmentID int64) *order.Order {
	t.Helper()
	kid, err := kernel.NewID(id)
	require.NoError(t, err)
	sid, err := kernel.NewID(shipmentID)
	require.NoError(t, err)
	existing, err := order.RestoreOrder(
		kid, number, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "ACME SA", 20000, order.New, &sid, false,
	)
	require.NoError(t, err)
	return existing
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id, _ := kernel.NewID(7)
	cmd := newUpdateOrderCmd(t, id, "ORD-0002")
	existing := restoreOrderWithShipmentFixture(t, 7, "ORD-0001", 5)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("GetByNumber", mock.Anything, "ORD-0002").
			Return(nil, errs.NewObjectNotFoundError("number", "ORD-0002")).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(updated *order.Order) bool {
			return updated.ID().IsEqual(id) &&
				updated.Number() == "ORD-0002" &&
				updated.Status() == order.Shipped &&
				updated.ShipmentID() != nil &&
				updated.ShipmentID().Int64() == 5
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Close", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NumberUnchanged(t *testing.T) {
	ctx := t.Context()
	id, _ := kernel.NewID(7)
	cmd := newUpdateOrderCmd(t, id, "ORD-0001")
	existing := restoreOrderWithShipmentFixture(t, 7, "ORD-0001", 5)

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("GetByNumber", mock.Anything, "ORD-0001").Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Close", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id, _ := kernel.NewID(404)
	cmd := newUpdateOrderCmd(t, id, "ORD-0002")

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Close", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_NumberTakenByOther(t *testing.T) {
	ctx := t.Context()
	id, _ := kernel.NewID(7)
	cmd := newUpdateOrderCmd(t, id, "ORD-0002")
	existing := restoreOrderWithShipmentFixture(t, 7, "ORD-0001", 5)
	other := restoreOrderFixture(t, 8, "ORD-0002")

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("GetByNumber", mock.Anything, "ORD-0002").Return(other, nil).Once(),
		uow.On("Close", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	handler := commands.NewUpdateOrderCommandHandler(factory)
	err := handler.Handle(ctx, commands.UpdateOrderCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
