// Package order provides domain entities and business logic for the order
// lifecycle in the marketplace. It implements the Order aggregate root with
// lifecycle management, carrier binding, and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items, and lifecycle
//   - Status: a state machine with an explicit transition table
//   - Item: an ordered line with a checkout-time price snapshot
//   - CarrierRef: the single kind-tagged reference to the bound carrier
//
// Key business rules:
//   - Orders start in Placed with no carrier bound
//   - Status follows Placed -> Accepted -> Preparing -> OutForDelivery ->
//     Delivered, with Cancelled reachable until the order is out for delivery
//   - At most one carrier is bound at a time; double assignment is a conflict
//   - Delivered and Cancelled are terminal
package order
