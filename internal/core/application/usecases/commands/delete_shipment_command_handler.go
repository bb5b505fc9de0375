package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// DeleteShipmentCommandHandler handles the business logic for shipment deletion.
// A shipment that is still referenced by an active order cannot be deleted;
// the order must be deleted or detached first.
type DeleteShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion operations.
// Requires a UoWFactory because the referential probe reads the order side.
func NewDeleteShipmentCommandHandler(uowFactory UoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command.
// Marks the shipment deleted without removing the row.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	referenced, err := uow.OrderRepository().ExistsActiveForShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewObjectStillReferencedError("shipment", cmd.ShipmentID().String())
	}

	if err = uow.ShipmentRepository().SoftDelete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
