// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipment entities.
// Reads never return soft-deleted shipments.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage and assigns
	// the store-generated identifier to the aggregate.
	// The tracking code must not already be used by an active shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and not be soft-deleted.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves an active shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// GetAllActive retrieves all shipments that have not been soft-deleted.
	GetAllActive(ctx context.Context) ([]*shipment.Shipment, error)

	// GetByTracking retrieves an active shipment by its tracking code.
	GetByTracking(ctx context.Context, tracking string) (*shipment.Shipment, error)

	// SoftDelete marks an active shipment as deleted without removing the row.
	// Returns an error when no active shipment with the given id exists.
	SoftDelete(ctx context.Context, id kernel.ID) error
}
