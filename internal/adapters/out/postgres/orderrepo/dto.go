// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number and the shipment reference are unique among active rows
// only, so both can be reused after the order holding them is soft-deleted.
type OrderDTO struct {
	ID           int64                     `gorm:"primaryKey;autoIncrement"`
	Number       string                    `gorm:"type:varchar(20);not null;uniqueIndex:ux_orders_number_active,where:deleted = false"`
	Date         time.Time                 `gorm:"type:date;not null"`
	CustomerName string                    `gorm:"type:varchar(120);not null"`
	Total        float64                   `gorm:"type:numeric(10,2);not null"`
	Status       int                       `gorm:"type:int;not null"`
	ShipmentID   *int64                    `gorm:"uniqueIndex:ux_orders_shipment_active,where:deleted = false"`
	Shipment     *shipmentrepo.ShipmentDTO `gorm:"foreignKey:ShipmentID"`
	Deleted      bool                      `gorm:"not null;default:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Only the shipment reference is mapped; the shipment row itself is owned by
// the shipment repository.
func fromDomain(aggregate *order.Order) OrderDTO {
	var shipmentID *int64
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Int64()
		shipmentID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		Number:       aggregate.Number(),
		Date:         aggregate.Date(),
		CustomerName: aggregate.CustomerName(),
		Total:        aggregate.Total(),
		Status:       int(aggregate.Status()),
		ShipmentID:   shipmentID,
		Deleted:      aggregate.IsDeleted(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// A preloaded shipment row is rebuilt and attached; a dangling reference to a
// soft-deleted shipment leaves the attachment empty while keeping the id.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.ID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.NewID(*dto.ShipmentID)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentID = &sID
	}

	aggregate, err := order.RestoreOrder(
		id,
		dto.Number,
		dto.Date,
		dto.CustomerName,
		dto.Total,
		order.Status(dto.Status),
		shipmentID,
		dto.Deleted,
	)
	if err != nil {
		return nil, err
	}

	if dto.Shipment != nil {
		s, shipmentErr := shipmentrepo.ToDomain(*dto.Shipment)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		if attachErr := aggregate.AttachShipment(s); attachErr != nil {
			return nil, attachErr
		}
	}

	return aggregate, nil
}
