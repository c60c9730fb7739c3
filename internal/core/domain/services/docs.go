// Package services contains domain services implementing business logic that
// spans multiple aggregates.
//
// CarrierDispatcher coordinates between Order and Carrier aggregates to pick
// the best available carrier for an order and execute the two-sided
// assignment. Keeping the selection policy here keeps both aggregates free of
// knowledge about each other's internals.
package services
