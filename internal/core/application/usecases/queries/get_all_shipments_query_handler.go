package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves all active shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active shipments.
// Returns a slice of shipment read models sorted by identifier.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0)

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
		WHERE deleted = false
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanShipmentResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

// scanShipmentResponse maps one shipment row onto the read model.
// Shared by every shipment query handler.
func scanShipmentResponse(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id int64
	var carrier, serviceLevel, status int
	var dispatchedOn, estimatedOn sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Tracking,
		&carrier,
		&serviceLevel,
		&resp.Cost,
		&dispatchedOn,
		&estimatedOn,
		&status,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.NewID(id)
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID
	resp.Carrier = shipment.Carrier(carrier).String()
	resp.ServiceLevel = shipment.ServiceLevel(serviceLevel).String()
	resp.Status = shipment.Status(status).String()
	if dispatchedOn.Valid {
		d := dispatchedOn.Time
		resp.DispatchedOn = &d
	}
	if estimatedOn.Valid {
		e := estimatedOn.Time
		resp.EstimatedOn = &e
	}

	return resp, nil
}
