package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	// Begin may only be called once per unit of work.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Close releases the unit of work. When a transaction is still
	// active it is rolled back. Close is safe to call multiple times
	// and is intended for defer.
	Close(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository instance bound to the
	// current transaction, or to the ambient connection before Begin().
	ShipmentRepository() ShipmentRepository

	// OrderRepository returns an OrderRepository instance bound to the
	// current transaction, or to the ambient connection before Begin().
	OrderRepository() OrderRepository
}
