package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler handles the business logic for shipment updates.
// The target must exist among active shipments, and the new tracking code may
// not collide with any other active shipment.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment update operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment update command.
// Replaces the shipment's mutable state with the command's state.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	updated, err := shipment.RestoreShipment(
		cmd.ShipmentID(),
		cmd.Tracking(),
		cmd.Carrier(),
		cmd.ServiceLevel(),
		cmd.Cost(),
		cmd.DispatchedOn(),
		cmd.EstimatedOn(),
		cmd.Status(),
		false,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer func() {
		_ = uow.Close(ctx)
	}()

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()

	// Existence check doubles as the soft-delete guard
	if _, err = shipmentRepo.Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = probeTrackingIsFree(ctx, shipmentRepo, cmd.Tracking(), cmd.ShipmentID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
