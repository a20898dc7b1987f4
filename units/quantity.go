package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Dimension is the physical dimension of a Unit.
type Dimension int

const (
	Dimensionless Dimension = iota
	LengthDim
	TimeDim
	TemperatureDim
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case LengthDim:
		return "length"
	case TimeDim:
		return "time"
	case TemperatureDim:
		return "temperature"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

var (
	ErrDimensionMismatch = errors.New("units: dimension mismatch")
	ErrUnknownUnit       = errors.New("units: unknown unit")
)

// DimensionMismatchError is returned when a value of one dimension is
// supplied where another is required.
type DimensionMismatchError struct {
	Op        string
	Want, Got Dimension
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: expected a %s, but got a %s", e.Op, e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// Unit is a named unit of measure. Scale converts a value in this unit to the
// base unit of its dimension (Mpc, Gyr, K).
type Unit struct {
	Symbol string
	Dim    Dimension
	Scale  float64
}

func (u Unit) String() string { return u.Symbol }

var (
	One = Unit{"", Dimensionless, 1}

	Mpc    = Unit{"Mpc", LengthDim, 1}
	Gpc    = Unit{"Gpc", LengthDim, 1e3}
	Kpc    = Unit{"kpc", LengthDim, 1e-3}
	Pc     = Unit{"pc", LengthDim, 1e-6}
	Meter  = Unit{"m", LengthDim, 1 / MpcMks}
	Km     = Unit{"km", LengthDim, 1e3 / MpcMks}
	Ly     = Unit{"ly", LengthDim, LyMks / MpcMks}
	Mly    = Unit{"Mly", LengthDim, 1e6 * LyMks / MpcMks}
	Gly    = Unit{"Gly", LengthDim, 1e9 * LyMks / MpcMks}
	Gyr    = Unit{"Gyr", TimeDim, 1}
	Myr    = Unit{"Myr", TimeDim, 1e-3}
	Year   = Unit{"yr", TimeDim, 1e-9}
	Second = Unit{"s", TimeDim, 1 / GyrMks}
	Kelvin = Unit{"K", TemperatureDim, 1}
)

var unitTable = []Unit{
	One, Mpc, Gpc, Kpc, Pc, Meter, Km, Ly, Mly, Gly,
	Gyr, Myr, Year, Second, Kelvin,
}

// LookupUnit returns the unit with the given symbol. Exact matches are
// preferred, but a case-insensitive match is accepted if it is unique.
func LookupUnit(sym string) (Unit, error) {
	sym = strings.TrimSpace(sym)
	for _, u := range unitTable {
		if u.Symbol == sym {
			return u, nil
		}
	}

	var found []Unit
	for _, u := range unitTable {
		if strings.EqualFold(u.Symbol, sym) {
			found = append(found, u)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}
	return Unit{}, fmt.Errorf("%w '%s'", ErrUnknownUnit, sym)
}

// Quantity is a value whose dimension is only known at run time.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q creates a Quantity from a value of any float type.
func Q[T Float](x T, u Unit) Quantity { return Quantity{float64(x), u} }

func (q Quantity) Dim() Dimension { return q.Unit.Dim }

// base returns the value of q in the base unit of its dimension.
func (q Quantity) base() float64 { return q.Value * q.Unit.Scale }

// In returns the value of q in the unit u.
func (q Quantity) In(u Unit) (float64, error) {
	if q.Unit.Dim != u.Dim {
		return 0, &DimensionMismatchError{"Quantity.In", u.Dim, q.Unit.Dim}
	}
	return q.base() / u.Scale, nil
}

// Convert returns q expressed in the unit u.
func (q Quantity) Convert(u Unit) (Quantity, error) {
	x, err := q.In(u)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{x, u}, nil
}

// Length returns q as a Length. q must have dimensions of length.
func (q Quantity) Length() (Length, error) {
	if q.Unit.Dim != LengthDim {
		return 0, &DimensionMismatchError{"Quantity.Length", LengthDim, q.Unit.Dim}
	}
	return Length(q.base()), nil
}

// Duration returns q as a Duration. q must have dimensions of time.
func (q Quantity) Duration() (Duration, error) {
	if q.Unit.Dim != TimeDim {
		return 0, &DimensionMismatchError{"Quantity.Duration", TimeDim, q.Unit.Dim}
	}
	return Duration(q.base()), nil
}

// Temperature returns q as a Temperature. q must have dimensions of
// temperature.
func (q Quantity) Temperature() (Temperature, error) {
	if q.Unit.Dim != TemperatureDim {
		return 0, &DimensionMismatchError{
			"Quantity.Temperature", TemperatureDim, q.Unit.Dim,
		}
	}
	return Temperature(q.base()), nil
}

// Scalar returns q as a bare number. q must be dimensionless.
func (q Quantity) Scalar() (float64, error) {
	if q.Unit.Dim != Dimensionless {
		return 0, &DimensionMismatchError{"Quantity.Scalar", Dimensionless, q.Unit.Dim}
	}
	return q.base(), nil
}

func (q Quantity) String() string {
	if q.Unit.Symbol == "" {
		return strconv.FormatFloat(q.Value, 'g', -1, 64)
	}
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Unit.Symbol
}

// ParseQuantity parses strings like "3371.6 Mpc", "12Gyr" or "0.5". A
// number without a unit is dimensionless.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("units: cannot parse an empty quantity")
	}

	num, sym := s, ""
	if fields := strings.Fields(s); len(fields) == 2 {
		num, sym = fields[0], fields[1]
	} else if len(fields) > 2 {
		return Quantity{}, fmt.Errorf("units: cannot parse quantity '%s'", s)
	} else {
		end := len(s)
		for end > 0 && unicode.IsLetter(rune(s[end-1])) {
			end--
		}
		num, sym = s[:end], s[end:]
	}

	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf(
			"units: '%s' does not start with a number: %w", s, err,
		)
	}
	u, err := LookupUnit(sym)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{x, u}, nil
}
