// Package shipment provides domain entities and business logic for shipment management
// in the fulfillment system. It implements the Shipment aggregate root with carrier,
// service-level and tracking-state handling.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, properties, and state
//   - Carrier: The closed set of carriers that can transport a shipment
//   - ServiceLevel: The delivery speed tier of a shipment
//   - Status: The tracking state of a shipment
//
// Key business rules:
//   - Shipments must have a tracking code (at most 40 characters) unique among active shipments
//   - Shipment cost is never negative
//   - When both dispatch and estimated dates are present, the estimated date is never
//     earlier than the dispatch date
//   - Shipments are retired with a logical-deletion flag, never physically removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
