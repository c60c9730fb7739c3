package order

import (
	"errors"
	"fmt"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"
	"skybite/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when attempting to create an order
	// without any line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("orderItems")
)

// Order is the aggregate root of the order lifecycle: creation at checkout,
// restaurant acceptance and preparation, carrier assignment, and delivery or
// cancellation.
//
// Invariants:
//   - Must reference a valid user, restaurant, delivery address, and payment
//   - Must have at least one item; total amount must be positive
//   - At most one carrier is bound at a time (CarrierRef), and only while the
//     order is not in a terminal status
//   - Status moves only along the transition table in status.go
//   - Can only be created through NewOrder / RestoreOrder
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	addressID    kernel.UUID
	paymentID    kernel.UUID
	items        []Item
	totalAmount  kernel.Money
	status       Status
	carrier      *CarrierRef

	// version backs the optimistic concurrency check in the repository.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Placed status with no carrier bound.
// All referenced identifiers must be valid, at least one item is required,
// and the total amount must be strictly positive.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	paymentID kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
) (*Order, error) {
	o := &Order{
		status:  Placed,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
		o.setPaymentID(paymentID),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage, preserving its
// status, carrier binding, and version.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	addressID kernel.UUID,
	paymentID kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	status Status,
	carrierRef *CarrierRef,
	version int,
) (*Order, error) {
	o := &Order{
		carrier: carrierRef,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
		o.setPaymentID(paymentID),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order")
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ordering customer.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the fulfilling restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// AddressID returns the delivery address reference.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// PaymentID returns the captured payment reference.
func (o *Order) PaymentID() kernel.UUID {
	return o.paymentID
}

// Items returns the ordered lines.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the checkout total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Carrier returns the bound carrier reference, or nil when unassigned.
func (o *Order) Carrier() *CarrierRef {
	return o.carrier
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int {
	return o.version
}

// ValidateAssign checks whether a carrier may be bound without performing the
// binding: the order must not be terminal and must not already have a carrier.
func (o *Order) ValidateAssign() error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s order cannot be assigned", o.status))
	}
	if o.carrier != nil {
		return errs.NewResourceConflictErrorWithCause("order", o.id.String(),
			fmt.Errorf("order is already assigned to %s %s", o.carrier.Kind(), o.carrier.ID()))
	}
	return nil
}

// AssignCarrier binds a carrier to the order. Binding a second carrier or
// binding onto a terminal order is rejected; the availability side of the
// assignment is the carrier aggregate's concern.
func (o *Order) AssignCarrier(ref CarrierRef) error {
	if err := o.ValidateAssign(); err != nil {
		return err
	}

	o.carrier = &ref
	return nil
}

// AdvanceTo moves the order along the status transition table.
func (o *Order) AdvanceTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled. Orders already out for delivery
// or in a terminal status cannot be cancelled.
func (o *Order) Cancel() error {
	return o.AdvanceTo(Cancelled)
}

// IsDelivered reports whether the order reached the successful terminal status.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("paymentId", err)
	}
	o.paymentID = paymentID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if !totalAmount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is not greater than 0", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
