package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles the business logic for order deletion.
// The delete never cascades: the referenced shipment stays active and becomes
// available for deletion or reuse once no active order points at it.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Marks the order deleted without removing the row.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().SoftDelete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
