package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// FindShipmentByTrackingQueryHandler looks an active shipment up by its
// tracking code.
type FindShipmentByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewFindShipmentByTrackingQueryHandler creates a handler for tracking lookups.
func NewFindShipmentByTrackingQueryHandler(db *gorm.DB) FindShipmentByTrackingQueryHandler {
	return FindShipmentByTrackingQueryHandler{db: db}
}

// Handle executes the lookup. A code carried only by soft-deleted shipments is
// reported as not found.
func (h FindShipmentByTrackingQueryHandler) Handle(
	ctx context.Context,
	query FindShipmentByTrackingQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking,
			carrier,
			service_level,
			cost,
			dispatched_on,
			estimated_on,
			status
		FROM shipments
		WHERE tracking = ? AND deleted = false
	`, query.Tracking()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("tracking", query.Tracking())
	}

	return scanShipmentResponse(rows)
}
