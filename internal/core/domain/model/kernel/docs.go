// Package kernel provides core domain primitives and utilities for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - ID: A value object for store-assigned identifiers with validation and comparison capabilities
//   - SoftDelete: The shared logical-deletion state composed into every persisted aggregate
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
