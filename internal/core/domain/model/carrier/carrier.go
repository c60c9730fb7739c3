package carrier

import (
	"errors"
	"fmt"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"
	"skybite/internal/pkg/guard"
)

const (
	minBatteryLevel = 0
	maxBatteryLevel = 100
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier is the aggregate root for an assignable delivery resource: either a
// human delivery partner or a drone. Both kinds share one availability model
// so assignment and the release-on-delivery rule apply uniformly.
//
// Invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Drones carry a battery level in [0,100] and a positive payload limit
//   - A carrier in InDelivery is referenced by exactly one active order;
//     it enters that state only via StartDelivery and leaves it only via Release
//   - Maintenance is a drone-only state
//   - Can only be created through NewCarrier / RestoreCarrier
type Carrier struct {
	id              kernel.UUID
	kind            Kind
	name            string
	status          Status
	batteryLevel    int
	maxPayloadGrams int

	// version backs the optimistic concurrency check in the repository.
	version int

	guard guard.ConstructorGuard
}

// NewCarrier creates a carrier in the Available state.
//
// For drones, batteryLevel must be within [0,100] and maxPayloadGrams must be
// positive. For delivery partners both capability values must be zero; they
// are not tracked for humans.
func NewCarrier(id kernel.UUID, kind Kind, name string, batteryLevel, maxPayloadGrams int) (*Carrier, error) {
	c := &Carrier{
		status:  Available,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setKind(kind),
		c.setName(name),
		c.setCapabilities(kind, batteryLevel, maxPayloadGrams),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a carrier from persistent storage, preserving
// its availability state and version.
func RestoreCarrier(
	id kernel.UUID,
	kind Kind,
	name string,
	status Status,
	batteryLevel, maxPayloadGrams int,
	version int,
) (*Carrier, error) {
	c := &Carrier{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setKind(kind),
		c.setName(name),
		c.setStatus(status),
		c.setCapabilities(kind, batteryLevel, maxPayloadGrams),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("carrier")
	}

	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Kind returns whether the carrier is a delivery partner or a drone.
func (c *Carrier) Kind() Kind {
	return c.kind
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// Status returns the current availability state.
func (c *Carrier) Status() Status {
	return c.status
}

// BatteryLevel returns the drone battery percentage; zero for delivery partners.
func (c *Carrier) BatteryLevel() int {
	return c.batteryLevel
}

// MaxPayloadGrams returns the drone payload limit; zero for delivery partners.
func (c *Carrier) MaxPayloadGrams() int {
	return c.maxPayloadGrams
}

// Version returns the optimistic concurrency version.
func (c *Carrier) Version() int {
	return c.version
}

// IsAvailable reports whether the carrier can accept an assignment.
func (c *Carrier) IsAvailable() bool {
	return c.status == Available
}

// StartDelivery claims the carrier for an order. Only an Available carrier
// can be claimed; anything else returns a resource conflict so two
// assignments racing for the same carrier resolve to exactly one winner.
func (c *Carrier) StartDelivery() error {
	if c.status != Available {
		return errs.NewResourceConflictErrorWithCause("carrier", c.id.String(),
			fmt.Errorf("carrier is %s, not %s", c.status, Available))
	}

	c.status = InDelivery
	return nil
}

// Release returns the carrier to the available pool after its bound order
// reached a terminal state. Releasing a carrier that is not in delivery is a
// programming error surfaced as an invalid value.
func (c *Carrier) Release() error {
	if c.status != InDelivery {
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%s cannot be released, carrier is not %s", c.status, InDelivery))
	}

	c.status = Available
	return nil
}

// ChangeStatus applies a fleet-management status patch (Available,
// Maintenance, Offline). InDelivery cannot be entered or left this way; those
// transitions belong to StartDelivery and Release so carrier state never
// drifts from order state. Maintenance is rejected for delivery partners.
func (c *Carrier) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if newStatus == InDelivery || c.status == InDelivery {
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%s -> %s must go through assignment", c.status, newStatus))
	}
	if newStatus == Maintenance && c.kind != Drone {
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%s is not a valid status for a %s", newStatus, c.kind))
	}

	c.status = newStatus
	return nil
}

// SetBatteryLevel records a drone battery reading.
func (c *Carrier) SetBatteryLevel(level int) error {
	if c.kind != Drone {
		return errs.NewValueIsInvalidError("batteryLevel is drone-only")
	}
	if level < minBatteryLevel || level > maxBatteryLevel {
		return errs.NewValueIsOutOfRangeError("batteryLevel", level, minBatteryLevel, maxBatteryLevel)
	}

	c.batteryLevel = level
	return nil
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Carrier) setCapabilities(kind Kind, batteryLevel, maxPayloadGrams int) error {
	if kind == Drone {
		if batteryLevel < minBatteryLevel || batteryLevel > maxBatteryLevel {
			return errs.NewValueIsOutOfRangeError("batteryLevel", batteryLevel, minBatteryLevel, maxBatteryLevel)
		}
		if maxPayloadGrams <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("maxPayloadGrams",
				fmt.Errorf("%d is not greater than 0", maxPayloadGrams))
		}
	} else if batteryLevel != 0 || maxPayloadGrams != 0 {
		return errs.NewValueIsInvalidError("battery and payload are drone-only capabilities")
	}

	c.batteryLevel = batteryLevel
	c.maxPayloadGrams = maxPayloadGrams
	return nil
}
