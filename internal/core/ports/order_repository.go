package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their attached shipment. Reads never return soft-deleted orders.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and assigns
	// the store-generated identifier to the aggregate.
	// The order number must not already be used by an active order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and not be soft-deleted.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an active order aggregate by its unique identifier.
	// The attached shipment, if any, is loaded alongside the order.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not been soft-deleted,
	// each with its attached shipment loaded.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetByNumber retrieves an active order by its business number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// ExistsActiveForShipment reports whether any active order references
	// the shipment with the given id.
	ExistsActiveForShipment(ctx context.Context, shipmentID kernel.ID) (bool, error)

	// SoftDelete marks an active order as deleted without removing the row.
	// Returns an error when no active order with the given id exists.
	SoftDelete(ctx context.Context, id kernel.ID) error
}
