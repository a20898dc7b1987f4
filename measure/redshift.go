/*
package measure provides value types for the ways of describing an epoch:
Redshift, ScaleFactor, and the distance and time measures of a cosmo.Model.

Every conversion is routed through Redshift. A Distance or Time is inverted
to a Redshift with its model's tables, and a Redshift is converted to any
other measure with the model's integrals:

	d, err := measure.NewDistance(mod, cosmo.Luminosity, 6743.1)
	z, err := d.Redshift()
	chi, err := d.To(cosmo.Comoving)

Values remember the model they were computed with, and combining values from
different models fails with a *cosmo.ModelMismatchError.
*/
package measure

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/units"
)

// Redshift is an epoch given by its redshift, z > -1. The zero value is
// today.
type Redshift struct{ z float64 }

// NewRedshift returns the redshift z. It returns a *cosmo.DomainError unless
// z is finite and > -1.
func NewRedshift[T units.Float](z T) (Redshift, error) {
	x := float64(z)
	if err := cosmo.CheckRedshift("measure.NewRedshift", x); err != nil {
		return Redshift{}, err
	}
	return Redshift{x}, nil
}

// Z returns the redshift as a number.
func (z Redshift) Z() float64 { return z.z }

// ScaleFactor returns a = 1 / (1 + z).
func (z Redshift) ScaleFactor() ScaleFactor {
	return ScaleFactor{1 / (1 + z.z)}
}

// Distance returns the distance measure m to z.
func (z Redshift) Distance(mod *cosmo.Model, m cosmo.Measure) (Distance, error) {
	return at[units.Length](mod, m, z.z)
}

// Time returns the time measure m to z.
func (z Redshift) Time(mod *cosmo.Model, m cosmo.Measure) (Time, error) {
	return at[units.Duration](mod, m, z.z)
}

// DistanceTo returns the distance measure m between an observer at z and a
// source at src. A relative distance is not anchored at today, so it is
// returned as a bare length.
func (z Redshift) DistanceTo(
	mod *cosmo.Model, m cosmo.Measure, src Redshift,
) (units.Length, error) {
	x, err := between[units.Length](mod, m, z.z, src.z)
	return units.Length(x), err
}

// TimeTo returns the time measure m between an observer at z and a source
// at src.
func (z Redshift) TimeTo(
	mod *cosmo.Model, m cosmo.Measure, src Redshift,
) (units.Duration, error) {
	x, err := between[units.Duration](mod, m, z.z, src.z)
	return units.Duration(x), err
}

// Compare returns -1, 0 or +1 when z is less than, equal to or greater than
// o.
func (z Redshift) Compare(o Redshift) int { return compare(z.z, o.z) }

func (z Redshift) String() string { return fmt.Sprintf("z = %g", z.z) }

// ScaleFactor is an epoch given by the relative size of the universe,
// a = 1 / (1 + z) > 0. The zero value is not a valid scale factor: use
// NewScaleFactor or Redshift.ScaleFactor.
type ScaleFactor struct{ a float64 }

// NewScaleFactor returns the scale factor a. It returns a *cosmo.DomainError
// unless a is finite and > 0.
func NewScaleFactor[T units.Float](a T) (ScaleFactor, error) {
	x := float64(a)
	if err := cosmo.CheckScaleFactor("measure.NewScaleFactor", x); err != nil {
		return ScaleFactor{}, err
	}
	return ScaleFactor{x}, nil
}

// A returns the scale factor as a number.
func (a ScaleFactor) A() float64 { return a.a }

// Z returns the redshift of a.
func (a ScaleFactor) Z() float64 { return a.Redshift().z }

// Redshift returns z = 1/a - 1.
func (a ScaleFactor) Redshift() Redshift {
	z := 1/a.a - 1
	// Scale factors beyond 2^53 round to z = -1.
	if z <= -1 {
		z = math.Nextafter(-1, 0)
	}
	return Redshift{z}
}

// Distance returns the distance measure m to a.
func (a ScaleFactor) Distance(mod *cosmo.Model, m cosmo.Measure) (Distance, error) {
	return a.Redshift().Distance(mod, m)
}

// Time returns the time measure m to a.
func (a ScaleFactor) Time(mod *cosmo.Model, m cosmo.Measure) (Time, error) {
	return a.Redshift().Time(mod, m)
}

// Compare returns -1, 0 or +1 when a is less than, equal to or greater than
// o. Note that later epochs have larger scale factors.
func (a ScaleFactor) Compare(o ScaleFactor) int { return compare(a.a, o.a) }

func (a ScaleFactor) String() string { return fmt.Sprintf("a = %g", a.a) }

var (
	_ cosmo.Epoch = Redshift{}
	_ cosmo.Epoch = ScaleFactor{}
)

func compare(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	}
	return 0
}
