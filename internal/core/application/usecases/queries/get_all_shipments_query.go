// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves all active shipments in the system.
// Soft-deleted shipments are never part of the result.
//
// Example:
//
//	query := NewGetAllShipmentsQuery()
//	handler := NewGetAllShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve shipments: %w", err)
//	}
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all active shipments.
// This is a parameterless query that fetches the complete active shipment list.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipmentsQueryIsNotConstructed if validation fails.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// ShipmentResponse represents shipment information in the read model.
// Enum values are rendered as their wire strings.
type ShipmentResponse struct {
	ID           kernel.ID
	Tracking     string
	Carrier      string
	ServiceLevel string
	Cost         float64
	DispatchedOn *time.Time
	EstimatedOn  *time.Time
	Status       string
}
