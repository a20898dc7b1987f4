package cosmo

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrDomain is returned when a value lies outside of its physical
	// domain, e.g. z <= -1 or a <= 0.
	ErrDomain = errors.New("cosmo: value outside of its physical domain")
	// ErrInvalidParameter is returned when a cosmological parameter is
	// rejected. It wraps ErrDomain.
	ErrInvalidParameter = fmt.Errorf("%w: invalid cosmological parameter", ErrDomain)
	// ErrUnsupported is returned when a model lacks the parameters needed to
	// compute a quantity.
	ErrUnsupported = errors.New("cosmo: unsupported operation")
	// ErrModelMismatch is returned when two values from different models
	// are combined.
	ErrModelMismatch = errors.New("cosmo: values belong to different cosmologies")
)

// DomainError reports a value outside of its physical domain.
type DomainError struct {
	Op    string
	Name  string
	Value float64
	// Want describes the allowed range, e.g. "> -1".
	Want string

	param bool
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %g, but it must be %s", e.Op, e.Name, e.Value, e.Want)
}

func (e *DomainError) Unwrap() error {
	if e.param {
		return ErrInvalidParameter
	}
	return ErrDomain
}

// UnsupportedError reports a quantity that the model cannot compute.
type UnsupportedError struct {
	Op     string
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ModelMismatchError reports an operation on values from two models.
type ModelMismatchError struct {
	Op   string
	A, B uuid.UUID
}

func (e *ModelMismatchError) Error() string {
	return fmt.Sprintf("%s: model %s is not model %s", e.Op, e.A, e.B)
}

func (e *ModelMismatchError) Unwrap() error { return ErrModelMismatch }

// CheckRedshift returns a *DomainError unless z is a finite redshift
// greater than -1.
func CheckRedshift(op string, z float64) error {
	if !(z > -1) || math.IsInf(z, 0) {
		return &DomainError{Op: op, Name: "z", Value: z, Want: "finite and > -1"}
	}
	return nil
}

// CheckScaleFactor returns a *DomainError unless a is a finite, positive
// scale factor.
func CheckScaleFactor(op string, a float64) error {
	if !(a > 0) || math.IsInf(a, 0) {
		return &DomainError{Op: op, Name: "a", Value: a, Want: "finite and > 0"}
	}
	return nil
}

// reached returns v, or a *DomainError if v is NaN because the model never
// reaches redshift z, as in the future of a recollapsing universe.
func reached(op string, z, v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, &DomainError{
			Op: op, Name: "z", Value: z, Want: "a redshift the model reaches",
		}
	}
	return v, nil
}

func paramError(op, name string, value float64, want string) error {
	return &DomainError{Op: op, Name: name, Value: value, Want: want, param: true}
}
