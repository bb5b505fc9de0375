// Package order provides domain entities and business logic for order management
// in the fulfillment system. It implements the Order aggregate root with its
// one-directional shipment reference.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and its shipment reference
//   - Status: The closed set of billing states an order can be in
//
// Key business rules:
//   - Orders must have a number (at most 20 characters) unique among active orders
//   - Order date and customer name are required; the total is never negative
//   - An order references at most one shipment, and the order holds the only pointer
//   - Orders are retired with a logical-deletion flag, never physically removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
