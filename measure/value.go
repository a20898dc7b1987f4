package measure

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/units"
)

// ErrNilModel is returned when a value is created without a model.
var ErrNilModel = errors.New("measure: nil model")

// Quantity is the physical quantity carried by a measure value.
type Quantity interface {
	units.Length | units.Duration
}

// Value is a distance or time measure interpreted in a particular model.
// Values are immutable. The zero value has no model and every conversion
// on it fails.
type Value[Q Quantity] struct {
	m   cosmo.Measure
	q   Q
	mod *cosmo.Model
}

// Distance is a distance measure: comoving, transverse comoving,
// luminosity, angular diameter or light travel.
type Distance = Value[units.Length]

// Time is a time measure: lookback or conformal.
type Time = Value[units.Duration]

// kindOf returns the measure kind that carries Q.
func kindOf[Q Quantity]() cosmo.Kind {
	var q Q
	if _, ok := any(q).(units.Duration); ok {
		return cosmo.TimeKind
	}
	return cosmo.DistanceKind
}

// checkMeasure verifies that m exists and carries Q.
func checkMeasure[Q Quantity](op string, m cosmo.Measure) error {
	if !m.Valid() {
		return fmt.Errorf("%s: invalid measure %d", op, int(m))
	}
	if want := kindOf[Q](); m.Kind() != want {
		return &units.DimensionMismatchError{
			Op: op, Want: want.Dimension(), Got: m.Kind().Dimension(),
		}
	}
	return nil
}

// New returns the value x, in Mpc for distances and Gyr for times, of
// measure m in model mod.
func New[Q Quantity, T units.Float](mod *cosmo.Model, m cosmo.Measure, x T) (Value[Q], error) {
	if mod == nil {
		return Value[Q]{}, ErrNilModel
	}
	if err := checkMeasure[Q]("measure.New", m); err != nil {
		return Value[Q]{}, err
	}
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value[Q]{}, &cosmo.DomainError{
			Op: "measure.New", Name: m.String(), Value: v, Want: "finite",
		}
	}
	return Value[Q]{m, Q(v), mod}, nil
}

// NewDistance returns a distance of mpc megaparsecs.
func NewDistance[T units.Float](mod *cosmo.Model, m cosmo.Measure, mpc T) (Distance, error) {
	return New[units.Length](mod, m, mpc)
}

// NewTime returns a time of gyr gigayears.
func NewTime[T units.Float](mod *cosmo.Model, m cosmo.Measure, gyr T) (Time, error) {
	return New[units.Duration](mod, m, gyr)
}

// at evaluates measure m at redshift z.
func at[Q Quantity](mod *cosmo.Model, m cosmo.Measure, z float64) (Value[Q], error) {
	if mod == nil {
		return Value[Q]{}, ErrNilModel
	}
	if err := checkMeasure[Q]("measure.at", m); err != nil {
		return Value[Q]{}, err
	}
	x, err := mod.Forward(m, z)
	if err != nil {
		return Value[Q]{}, err
	}
	return Value[Q]{m, Q(x), mod}, nil
}

// between evaluates measure m between redshifts z1 and z2.
func between[Q Quantity](mod *cosmo.Model, m cosmo.Measure, z1, z2 float64) (float64, error) {
	if mod == nil {
		return 0, ErrNilModel
	}
	if err := checkMeasure[Q]("measure.between", m); err != nil {
		return 0, err
	}
	return mod.ForwardBetween(m, z1, z2)
}

// Measure returns which measure v is.
func (v Value[Q]) Measure() cosmo.Measure { return v.m }

// Model returns the model v is interpreted in.
func (v Value[Q]) Model() *cosmo.Model { return v.mod }

// Quantity returns the length or duration of v.
func (v Value[Q]) Quantity() Q { return v.q }

// Float returns v in Mpc or Gyr.
func (v Value[Q]) Float() float64 { return float64(v.q) }

// Redshift returns the redshift at which the measure takes the value v.
func (v Value[Q]) Redshift() (Redshift, error) {
	if v.mod == nil {
		return Redshift{}, ErrNilModel
	}
	z, err := v.mod.Invert(v.m, float64(v.q))
	if err != nil {
		return Redshift{}, err
	}
	return Redshift{z}, nil
}

// ScaleFactor returns the scale factor at which the measure takes the value
// v.
func (v Value[Q]) ScaleFactor() (ScaleFactor, error) {
	z, err := v.Redshift()
	if err != nil {
		return ScaleFactor{}, err
	}
	return z.ScaleFactor(), nil
}

// To converts v to another measure of the same kind, through the redshift
// at which v is reached.
func (v Value[Q]) To(m cosmo.Measure) (Value[Q], error) {
	if err := checkMeasure[Q]("measure.Value.To", m); err != nil {
		return Value[Q]{}, err
	}
	if m == v.m {
		return v, nil
	}
	z, err := v.Redshift()
	if err != nil {
		return Value[Q]{}, err
	}
	return at[Q](v.mod, m, z.z)
}

// check returns an error unless v and o have the same model and
// measure.
func (v Value[Q]) check(op string, o Value[Q]) error {
	if v.mod == nil || o.mod == nil {
		return ErrNilModel
	}
	if v.mod != o.mod {
		return &cosmo.ModelMismatchError{Op: op, A: v.mod.ID(), B: o.mod.ID()}
	}
	if v.m != o.m {
		return &cosmo.UnsupportedError{
			Op: op, Reason: fmt.Sprintf("cannot combine %s and %s values", v.m, o.m),
		}
	}
	return nil
}

// Compare returns -1, 0 or +1 when v is less than, equal to or greater than
// o. Values from different models or of different measures cannot be
// compared.
func (v Value[Q]) Compare(o Value[Q]) (int, error) {
	if err := v.check("measure.Value.Compare", o); err != nil {
		return 0, err
	}
	return compare(float64(v.q), float64(o.q)), nil
}

// Equal reports whether v and o are the same value. Values from different
// models or of different measures cannot be compared.
func (v Value[Q]) Equal(o Value[Q]) (bool, error) {
	c, err := v.Compare(o)
	return c == 0 && err == nil, err
}

// Add returns v + o.
func (v Value[Q]) Add(o Value[Q]) (Value[Q], error) {
	if err := v.check("measure.Value.Add", o); err != nil {
		return Value[Q]{}, err
	}
	return Value[Q]{v.m, v.q + o.q, v.mod}, nil
}

// Sub returns v - o.
func (v Value[Q]) Sub(o Value[Q]) (Value[Q], error) {
	if err := v.check("measure.Value.Sub", o); err != nil {
		return Value[Q]{}, err
	}
	return Value[Q]{v.m, v.q - o.q, v.mod}, nil
}

// Scale returns x times v. x may have any float type and is widened to
// float64.
func Scale[Q Quantity, T units.Float](v Value[Q], x T) Value[Q] {
	return Value[Q]{v.m, v.q * Q(x), v.mod}
}

func (v Value[Q]) String() string {
	return fmt.Sprintf("%g %s (%s)", float64(v.q), v.m.Unit(), v.m)
}

// LookbackTime returns the lookback time of a light travel distance, t = d/c.
func LookbackTime(d Distance) (Time, error) {
	if d.m != cosmo.LightTravel {
		return Time{}, &cosmo.UnsupportedError{
			Op:     "measure.LookbackTime",
			Reason: fmt.Sprintf("a %s distance is not proportional to a time", d.m),
		}
	}
	return Time{cosmo.Lookback, units.LightTime(d.q), d.mod}, nil
}

// LightTravelDistance returns the light travel distance of a lookback time,
// d = c t.
func LightTravelDistance(t Time) (Distance, error) {
	if t.m != cosmo.Lookback {
		return Distance{}, &cosmo.UnsupportedError{
			Op:     "measure.LightTravelDistance",
			Reason: fmt.Sprintf("a %s time is not proportional to a distance", t.m),
		}
	}
	return Distance{cosmo.LightTravel, units.LightDistance(t.q), t.mod}, nil
}
