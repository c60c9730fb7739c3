// Package access implements authorization for the marketplace API. A single
// capability table maps (actor role, action) to allow/deny, replacing
// per-resource middleware checks. The table is static and persistence-free;
// resolving the caller's role from a token is the HTTP adapter's concern.
package access

import (
	"fmt"

	"skybite/internal/pkg/errs"
)

// Role is the authenticated caller's role in the marketplace.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Customer places orders and views their own history.
	Customer

	// Restaurant confirms orders and tracks its own queue.
	Restaurant

	// Delivery covers delivery partners and fleet operators: assignment,
	// delivery progress, and drone management.
	Delivery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		Customer:    "CUSTOMER",
		Restaurant:  "RESTAURANT",
		Delivery:    "DELIVERY",
	}
}

// RoleFromString parses the role claim carried in bearer tokens.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != Customer && r != Restaurant && r != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Action identifies an operation the API exposes.
type Action string

const (
	// CreateOrder places a new order after checkout.
	CreateOrder Action = "order:create"

	// ConfirmOrder moves an order through the restaurant-side statuses.
	ConfirmOrder Action = "order:confirm"

	// ProgressDelivery moves an order through the delivery-side statuses.
	ProgressDelivery Action = "order:progress"

	// AssignCarrier binds a deliveryman or drone to an order.
	AssignCarrier Action = "order:assign"

	// ListOwnOrders reads a customer's own order history.
	ListOwnOrders Action = "order:list-own"

	// ListRestaurantOrders reads a restaurant's order queue.
	ListRestaurantOrders Action = "order:list-restaurant"

	// ListDeliveryOrders reads the delivery-side listings: delivered,
	// assigned, unassigned, and per-carrier orders.
	ListDeliveryOrders Action = "order:list-delivery"

	// ManageFleet covers drone CRUD and status changes.
	ManageFleet Action = "fleet:manage"
)

// ErrActorIsForbidden indicates the caller's role does not grant the action.
type ErrActorIsForbidden struct {
	Role   Role
	Action Action
}

func (e *ErrActorIsForbidden) Error() string {
	return fmt.Sprintf("role %s is not allowed to perform %s", e.Role, e.Action)
}

// Guard answers allow/deny for (role, action) pairs.
type Guard struct {
	capabilities map[Role]map[Action]struct{}
}

// NewGuard creates a guard with the marketplace capability table.
func NewGuard() *Guard {
	return &Guard{
		capabilities: map[Role]map[Action]struct{}{
			Customer: {
				CreateOrder:   {},
				ListOwnOrders: {},
			},
			Restaurant: {
				ConfirmOrder:         {},
				ListRestaurantOrders: {},
			},
			Delivery: {
				ProgressDelivery:   {},
				AssignCarrier:      {},
				ListDeliveryOrders: {},
				ManageFleet:        {},
			},
		},
	}
}

// Allowed reports whether the role may perform the action.
func (g *Guard) Allowed(role Role, action Action) bool {
	actions, ok := g.capabilities[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

// Authorize returns ErrActorIsForbidden when the role may not perform the
// action.
func (g *Guard) Authorize(role Role, action Action) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !g.Allowed(role, action) {
		return &ErrActorIsForbidden{Role: role, Action: action}
	}
	return nil
}
