package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// The target must exist among active orders, and the new number may not
// collide with any other active order. The shipment reference of the stored
// order is carried over untouched.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer func() {
		_ = uow.Close(ctx)
	}()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = probeNumberIsFree(ctx, orderRepo, cmd.Number(), cmd.OrderID()); err != nil {
		return err
	}

	updated, err := order.RestoreOrder(
		cmd.OrderID(),
		cmd.Number(),
		cmd.Date(),
		cmd.CustomerName(),
		cmd.Total(),
		cmd.Status(),
		existing.ShipmentID(),
		false,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
