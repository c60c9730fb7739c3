package order

import (
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
)

// CarrierRef identifies the single active carrier bound to an order. Folding
// the deliveryman/drone references into one kind-tagged value makes "at most
// one active carrier" hold by construction instead of by convention.
type CarrierRef struct {
	kind carrier.Kind
	id   kernel.UUID
}

// NewCarrierRef creates a validated carrier reference.
func NewCarrierRef(kind carrier.Kind, id kernel.UUID) (CarrierRef, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return CarrierRef{}, err
	}
	return CarrierRef{kind: kind, id: id}, nil
}

// Kind returns whether the carrier is a delivery partner or a drone.
func (r CarrierRef) Kind() carrier.Kind {
	return r.kind
}

// ID returns the carrier's identifier.
func (r CarrierRef) ID() kernel.UUID {
	return r.id
}

// IsDrone reports whether the reference points at a drone.
func (r CarrierRef) IsDrone() bool {
	return r.kind == carrier.Drone
}
