/*
package units provides the dimensioned values used throughout cosmoconv.

Lengths are stored as Mpc, durations as Gyr and temperatures as Kelvin. The
underlying type of each is float64, so a Length can be built from a value in
Mpc with a plain conversion, units.Length(mpc), and arithmetic between values of
the same dimension is free. Values whose dimension is only known at run time
(user input, config files) are carried as a Quantity and checked when they are
converted to one of the static types.
*/
package units

import (
	"fmt"
)

// Float is the set of numeric types accepted by the generic constructors in
// cosmoconv. Values are always widened to float64.
type Float interface {
	~float32 | ~float64
}

// Length is a distance in Mpc.
type Length float64

// Mpcs returns a Length from a value in Mpc of any float type.
func Mpcs[T Float](x T) Length { return Length(float64(x)) }

func (l Length) Mpc() float64        { return float64(l) }
func (l Length) Gpc() float64        { return float64(l) / 1e3 }
func (l Length) Kpc() float64        { return float64(l) * 1e3 }
func (l Length) Meters() float64     { return float64(l) * MpcMks }
func (l Length) LightYears() float64 { return float64(l) * MpcMks / LyMks }

// In returns the length in the given unit.
func (l Length) In(u Unit) (float64, error) {
	return l.Quantity().In(u)
}

// Quantity returns the length as a dimensioned Quantity in Mpc.
func (l Length) Quantity() Quantity { return Quantity{float64(l), Mpc} }

func (l Length) String() string { return fmt.Sprintf("%.6g Mpc", float64(l)) }

// Duration is a time interval in Gyr.
type Duration float64

// Gyrs returns a Duration from a value in Gyr of any float type.
func Gyrs[T Float](x T) Duration { return Duration(float64(x)) }

func (d Duration) Gyr() float64     { return float64(d) }
func (d Duration) Myr() float64     { return float64(d) * 1e3 }
func (d Duration) Years() float64   { return float64(d) * 1e9 }
func (d Duration) Seconds() float64 { return float64(d) * GyrMks }

// In returns the duration in the given unit.
func (d Duration) In(u Unit) (float64, error) {
	return d.Quantity().In(u)
}

// Quantity returns the duration as a dimensioned Quantity in Gyr.
func (d Duration) Quantity() Quantity { return Quantity{float64(d), Gyr} }

func (d Duration) String() string { return fmt.Sprintf("%.6g Gyr", float64(d)) }

// Temperature is a temperature in Kelvin.
type Temperature float64

func (t Temperature) Kelvin() float64 { return float64(t) }

// Quantity returns the temperature as a dimensioned Quantity in K.
func (t Temperature) Quantity() Quantity { return Quantity{float64(t), Kelvin} }

func (t Temperature) String() string { return fmt.Sprintf("%.6g K", float64(t)) }

// LightDistance is the distance light travels in d, c*d.
func LightDistance(d Duration) Length {
	return Length(float64(d) * SpeedOfLight)
}

// LightTime is the time light takes to cross l, l/c.
func LightTime(l Length) Duration {
	return Duration(float64(l) / SpeedOfLight)
}
