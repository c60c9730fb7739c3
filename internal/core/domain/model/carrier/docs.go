// Package carrier provides the domain model for assignable delivery
// resources. A Carrier is either a human delivery partner or a delivery
// drone; both share one availability state machine so the assignment rules
// and the release-on-delivery rule apply uniformly to either kind.
//
// Key business rules:
//   - A carrier in the Available state can be claimed for exactly one order
//   - Claiming (StartDelivery) and releasing (Release) are the only ways in
//     and out of the InDelivery state; fleet status patches cannot fake them
//   - Maintenance is a drone-only state
//   - Drones carry battery level and payload capability limits
package carrier
