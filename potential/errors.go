package potential

import (
	"errors"
	"fmt"
)

// Status codes for the flat, C-shaped entry points. Errors returned by this
// package map onto these through Status.
const (
	StatusOK              = 0
	StatusUnsupportedType = 1
	StatusDomain          = 2
)

// An UnsupportedTypeError reports a type code with no registered
// constructor.
type UnsupportedTypeError struct {
	Code  int
	Index int
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported potential type %d at component %d",
		e.Code, e.Index)
}

// A DomainError reports a coordinate outside a component's valid domain.
type DomainError struct {
	R, Z   float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("potential undefined at (R=%g, z=%g): %s",
		e.R, e.Z, e.Reason)
}

// Status maps an error returned by this package to its status code. A nil
// error maps to StatusOK. Errors of unknown kinds map to StatusDomain, the
// only failure that can occur once parsing has succeeded.
func Status(err error) int {
	if err == nil {
		return StatusOK
	}

	var ute *UnsupportedTypeError
	if errors.As(err, &ute) {
		return StatusUnsupportedType
	}

	return StatusDomain
}
