package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Probes the tracking code for uniqueness among active shipments before the
// insert; the partial unique index backs the probe against races.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the identifier
// the store assigned to the new shipment.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ZeroID, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.Tracking(),
		cmd.Carrier(),
		cmd.ServiceLevel(),
		cmd.Cost(),
		cmd.DispatchedOn(),
		cmd.EstimatedOn(),
		cmd.Status(),
	)
	if err != nil {
		return kernel.ZeroID, err
	}

	uow := h.uowFactory.Create()
	defer func() {
		_ = uow.Close(ctx)
	}()

	if err = uow.Begin(ctx); err != nil {
		return kernel.ZeroID, err
	}

	shipmentRepo := uow.ShipmentRepository()
	if err = probeTrackingIsFree(ctx, shipmentRepo, cmd.Tracking(), kernel.ZeroID); err != nil {
		return kernel.ZeroID, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return kernel.ZeroID, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ZeroID, err
	}

	return newShipment.ID(), nil
}

// probeTrackingIsFree reports an already-exists error when an active shipment
// other than excludeID carries the tracking code. Shared by create and update.
func probeTrackingIsFree(
	ctx context.Context, repo ports.ShipmentRepository, tracking string, excludeID kernel.ID,
) error {
	existing, err := repo.GetByTracking(ctx, tracking)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return nil
		}
		return err
	}

	if existing.ID().IsEqual(excludeID) {
		return nil
	}

	return errs.NewObjectAlreadyExistsError("tracking", tracking)
}
