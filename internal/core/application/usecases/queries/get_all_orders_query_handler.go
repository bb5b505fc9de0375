package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// orderSelect joins every active order with its active shipment, if any.
// The join condition filters deleted shipments so a stale reference degrades
// to an order without a shipment instead of failing.
const orderSelect = `
	SELECT
		o.id,
		o.number,
		o.date,
		o.customer_name,
		o.total,
		o.status,
		s.id,
		s.tracking,
		s.carrier,
		s.service_level,
		s.cost,
		s.dispatched_on,
		s.estimated_on,
		s.status
	FROM orders o
	LEFT JOIN shipments s ON s.id = o.shipment_id AND s.deleted = false
	WHERE o.deleted = false
`

// GetAllOrdersQueryHandler retrieves all active orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns a slice of order read models sorted by identifier, each carrying its
// active shipment when one is attached.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(orderSelect + " ORDER BY o.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderResponse maps one joined order row onto the read model.
// The shipment half of the row is nullable. Shared by every order query handler.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id int64
	var status int
	var shipmentID sql.NullInt64
	var tracking sql.NullString
	var carrier, serviceLevel, shipmentStatus sql.NullInt32
	var cost sql.NullFloat64
	var dispatchedOn, estimatedOn sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Number,
		&resp.Date,
		&resp.CustomerName,
		&resp.Total,
		&status,
		&shipmentID,
		&tracking,
		&carrier,
		&serviceLevel,
		&cost,
		&dispatchedOn,
		&estimatedOn,
		&shipmentStatus,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.NewID(id)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	if !shipmentID.Valid {
		return resp, nil
	}

	attachedID, err := kernel.NewID(shipmentID.Int64)
	if err != nil {
		return OrderResponse{}, err
	}

	attached := &ShipmentResponse{
		ID:           attachedID,
		Tracking:     tracking.String,
		Carrier:      shipment.Carrier(carrier.Int32).String(),
		ServiceLevel: shipment.ServiceLevel(serviceLevel.Int32).String(),
		Cost:         cost.Float64,
		Status:       shipment.Status(shipmentStatus.Int32).String(),
	}
	if dispatchedOn.Valid {
		d := dispatchedOn.Time
		attached.DispatchedOn = &d
	}
	if estimatedOn.Valid {
		e := estimatedOn.Time
		attached.EstimatedOn = &e
	}
	resp.Shipment = attached

	return resp, nil
}
