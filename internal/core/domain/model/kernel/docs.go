// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: a decimal monetary amount for price snapshots and order totals
//
// Kernel types enforce their own invariants through factory constructors and
// Validate methods, so aggregates can rely on received values being well
// formed.
package kernel
