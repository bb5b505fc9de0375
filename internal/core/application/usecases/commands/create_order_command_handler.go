package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the coordinated create-order-with-shipment
// workflow. The shipment is inserted first so the store assigns its identifier,
// the order is inserted referencing it, and the pair commits atomically: a
// failure in either insert rolls back both.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning both aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier the
// store assigned to the new order. Validation and uniqueness failures surface
// as-is; failures of the insert phase are wrapped as a transaction error
// carrying the cause, after the transaction has been rolled back.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ZeroID, err
	}

	shipmentCmd := cmd.Shipment()
	newShipment, err := shipment.NewShipment(
		shipmentCmd.Tracking(),
		shipmentCmd.Carrier(),
		shipmentCmd.ServiceLevel(),
		shipmentCmd.Cost(),
		shipmentCmd.DispatchedOn(),
		shipmentCmd.EstimatedOn(),
		shipmentCmd.Status(),
	)
	if err != nil {
		return kernel.ZeroID, err
	}

	newOrder, err := order.NewOrder(
		cmd.Number(),
		cmd.Date(),
		cmd.CustomerName(),
		cmd.Total(),
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

	// Both natural keys are probed before anything is written, so a taken
	// number cannot leave behind an already-inserted shipment.
	if err = probeTrackingIsFree(ctx, uow.ShipmentRepository(), shipmentCmd.Tracking(), kernel.ZeroID); err != nil {
		return kernel.ZeroID, err
	}
	if err = probeNumberIsFree(ctx, uow.OrderRepository(), cmd.Number(), kernel.ZeroID); err != nil {
		return kernel.ZeroID, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return kernel.ZeroID, h.fail(ctx, uow, err)
	}

	if err = newOrder.AttachShipment(newShipment); err != nil {
		return kernel.ZeroID, h.fail(ctx, uow, err)
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.ZeroID, h.fail(ctx, uow, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ZeroID, errs.NewTransactionError("create order with shipment", err)
	}

	return newOrder.ID(), nil
}

// fail rolls the transaction back and wraps the insert-phase cause.
// Rollback always precedes surfacing the error.
func (h *CreateOrderCommandHandler) fail(ctx context.Context, uow UoW, cause error) error {
	_ = uow.Rollback(ctx)
	return errs.NewTransactionError("create order with shipment", cause)
}

// probeNumberIsFree reports an already-exists error when an active order other
// than excludeID carries the business number. Shared by create and update.
func probeNumberIsFree(
	ctx context.Context, repo ports.OrderRepository, number string, excludeID kernel.ID,
) error {
	existing, err := repo.GetByNumber(ctx, number)
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

	return errs.NewObjectAlreadyExistsError("number", number)
}
