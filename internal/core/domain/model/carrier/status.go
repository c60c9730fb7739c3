package carrier

import (
	"fmt"

	"skybite/internal/pkg/errs"
)

// Status represents the availability state of a delivery resource.
//
// State transitions:
//
//	Available ──> InDelivery ──> Available      (claim / release)
//	Available <─> Maintenance                   (drones only, fleet staff)
//	Available <─> Offline                       (fleet staff)
//
// InDelivery can only be entered through StartDelivery and left through
// Release, because those transitions must stay coupled to an order update.
// Fleet-management status patches may move a carrier between the remaining
// states freely.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the carrier is idle and eligible for assignment.
	Available

	// InDelivery means the carrier is bound to exactly one active order.
	InDelivery

	// Maintenance means a drone is grounded for service and must not be assigned.
	Maintenance

	// Offline means the carrier is out of rotation (off shift, powered down).
	Offline
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Available:     "AVAILABLE",
		InDelivery:    "IN_DELIVERY",
		Maintenance:   "MAINTENANCE",
		Offline:       "OFFLINE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "AVAILABLE",
		InDelivery:  "IN_DELIVERY",
		Maintenance: "MAINTENANCE",
		Offline:     "OFFLINE",
	}
}

// StatusFromString parses the wire representation of a carrier status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("carrier status",
		fmt.Errorf("%q is not a valid carrier status", s))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier status",
			fmt.Errorf("%d is not a valid carrier status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
