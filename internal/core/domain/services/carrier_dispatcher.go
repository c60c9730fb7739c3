package services

import (
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// MinDispatchBatteryLevel is the minimum charge a drone needs to be
// considered for a delivery run.
const MinDispatchBatteryLevel = 20

// ErrCarrierNotFound is returned when no suitable carrier is available for
// order dispatch. This occurs when either no carriers are provided or none of
// the provided carriers is available (busy, offline, in maintenance, or a
// drone below the dispatch battery threshold).
var ErrCarrierNotFound = errors.New("carrier not found")

// CarrierDispatcher is a domain service that picks the best carrier for an
// order and executes the two-sided assignment: the carrier is claimed for the
// delivery and the order gets a reference to it.
//
// Business rules:
//   - The order must be valid and must not already have a carrier bound
//   - Only carriers in the Available status are considered
//   - Drones additionally need a battery level of at least
//     MinDispatchBatteryLevel; among eligible drones the fullest battery wins
//   - Deliverymen have no charge, so the first available one wins
type CarrierDispatcher struct{}

// NewCarrierDispatcher creates a new CarrierDispatcher instance.
func NewCarrierDispatcher() CarrierDispatcher {
	return CarrierDispatcher{}
}

// Dispatch finds the best carrier for the order and assigns it.
//
// Returns ErrCarrierNotFound when no carrier is eligible. On success the
// chosen carrier is in the InDelivery status and the order references it;
// the caller is responsible for persisting both sides in one transaction.
func (d CarrierDispatcher) Dispatch(o *order.Order, carriers []*carrier.Carrier) (*carrier.Carrier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findBestCarrier(carriers)
	if err != nil {
		return nil, err
	}

	if err = best.StartDelivery(); err != nil {
		return nil, err
	}

	ref, err := order.NewCarrierRef(best.Kind(), best.ID())
	if err != nil {
		return nil, err
	}

	if err = o.AssignCarrier(ref); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCarrier evaluates the candidates and picks the winner.
//
// All candidates are validated up front so a malformed carrier surfaces as an
// error rather than being silently skipped. Eligible drones compete on
// battery level; a fully-charged drone holds its charge estimate the longest,
// so ties go to the first one seen.
func (d CarrierDispatcher) findBestCarrier(carriers []*carrier.Carrier) (*carrier.Carrier, error) {
	for _, c := range carriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	eligible := lo.Filter(carriers, func(c *carrier.Carrier, _ int) bool {
		if !c.IsAvailable() {
			return false
		}
		if c.Kind() == carrier.Drone {
			return c.BatteryLevel() >= MinDispatchBatteryLevel
		}
		return true
	})

	if len(eligible) == 0 {
		return nil, ErrCarrierNotFound
	}

	best := lo.MaxBy(eligible, func(a, b *carrier.Carrier) bool {
		return a.BatteryLevel() > b.BatteryLevel()
	})

	return best, nil
}
