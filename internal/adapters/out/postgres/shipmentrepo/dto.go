// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The tracking code is unique among active rows only, so a code can be reused
// after the shipment carrying it has been soft-deleted.
type ShipmentDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Tracking     string     `gorm:"type:varchar(40);not null;uniqueIndex:ux_shipments_tracking_active,where:deleted = false"`
	Carrier      int        `gorm:"type:int;not null"`
	ServiceLevel int        `gorm:"type:int;not null"`
	Cost         float64    `gorm:"type:numeric(10,2);not null"`
	DispatchedOn *time.Time `gorm:"type:date"`
	EstimatedOn  *time.Time `gorm:"type:date"`
	Status       int        `gorm:"type:int;not null"`
	Deleted      bool       `gorm:"not null;default:false"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments" instead of "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// A zero identifier stays zero so the store assigns one on insert.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:           aggregate.ID().Int64(),
		Tracking:     aggregate.Tracking(),
		Carrier:      int(aggregate.Carrier()),
		ServiceLevel: int(aggregate.ServiceLevel()),
		Cost:         aggregate.Cost(),
		DispatchedOn: aggregate.DispatchedOn(),
		EstimatedOn:  aggregate.EstimatedOn(),
		Status:       int(aggregate.Status()),
		Deleted:      aggregate.IsDeleted(),
	}
}

// ToDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate using RestoreShipment. Exported because
// the order repository rebuilds attached shipments from preloaded rows.
func ToDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.Tracking,
		shipment.Carrier(dto.Carrier),
		shipment.ServiceLevel(dto.ServiceLevel),
		dto.Cost,
		dto.DispatchedOn,
		dto.EstimatedOn,
		shipment.Status(dto.Status),
		dto.Deleted,
	)
}
