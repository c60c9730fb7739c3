package carrier

import (
	"fmt"

	"skybite/internal/pkg/errs"
)

// Kind discriminates the two delivery resource types the marketplace can bind
// to an order.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Deliveryman is a human delivery partner on a bike or scooter.
	Deliveryman

	// Drone is an autonomous delivery drone with battery and payload limits.
	Drone
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "UNKNOWN",
		Deliveryman: "DELIVERYMAN",
		Drone:       "DRONE",
	}
}

// KindFromString parses the wire representation of a carrier kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("carrier kind",
		fmt.Errorf("%q is not a valid carrier kind", s))
}

// Validate rejects KindUnknown and out-of-range values.
func (k Kind) Validate() error {
	if k != Deliveryman && k != Drone {
		return errs.NewValueIsInvalidErrorWithCause("carrier kind",
			fmt.Errorf("%d is not a valid carrier kind", k))
	}
	return nil
}

// String returns the wire name of the kind, or "UNKNOWN" for invalid values.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
