package cosmo

import (
	"fmt"
	"math"
	"strings"

	"github.com/phil-mansfield/cosmoconv/flrw"
	"github.com/phil-mansfield/cosmoconv/units"
)

// Kind separates measures with dimensions of length from those with
// dimensions of time.
type Kind int

const (
	DistanceKind Kind = iota
	TimeKind
)

func (k Kind) String() string {
	if k == TimeKind {
		return "time"
	}
	return "distance"
}

// Dimension returns the physical dimension of measures of this kind.
func (k Kind) Dimension() units.Dimension {
	if k == TimeKind {
		return units.TimeDim
	}
	return units.LengthDim
}

// Measure names one of the ways of describing how far away an epoch is.
type Measure int

const (
	// Comoving is the line-of-sight comoving distance, chi.
	Comoving Measure = iota
	// TransverseComoving is the transverse comoving distance, D_M.
	TransverseComoving
	// Luminosity is the luminosity distance, D_L = (1 + z) D_M.
	Luminosity
	// AngularDiameter is the angular diameter distance, D_A = D_M / (1 + z).
	AngularDiameter
	// LightTravel is the distance light travels during the lookback time.
	LightTravel
	// Lookback is the lookback time.
	Lookback
	// Conformal is the conformal lookback time, chi / c.
	Conformal

	numMeasures
)

// measureDef describes how a Measure is evaluated and inverted. Values are
// in Mpc for distances and Gyr for times.
type measureDef struct {
	name string
	kind Kind
	abs  func(e *flrw.Engine, z float64) float64
	rel  func(e *flrw.Engine, z1, z2 float64) float64
	// Time measures are inverted through the distance table they are
	// proportional to: table value = scale * value.
	table Measure
	scale float64
}

var measureDefs = [numMeasures]measureDef{
	Comoving: {
		name:  "comoving",
		kind:  DistanceKind,
		abs:   func(e *flrw.Engine, z float64) float64 { return e.Comoving(z).Mpc() },
		rel:   func(e *flrw.Engine, z1, z2 float64) float64 { return e.ComovingBetween(z1, z2).Mpc() },
		table: Comoving, scale: 1,
	},
	TransverseComoving: {
		name:  "transverse",
		kind:  DistanceKind,
		abs:   func(e *flrw.Engine, z float64) float64 { return e.Transverse(z).Mpc() },
		rel:   func(e *flrw.Engine, z1, z2 float64) float64 { return e.TransverseBetween(z1, z2).Mpc() },
		table: TransverseComoving, scale: 1,
	},
	Luminosity: {
		name:  "luminosity",
		kind:  DistanceKind,
		abs:   func(e *flrw.Engine, z float64) float64 { return e.Luminosity(z).Mpc() },
		rel:   func(e *flrw.Engine, z1, z2 float64) float64 { return e.LuminosityBetween(z1, z2).Mpc() },
		table: Luminosity, scale: 1,
	},
	AngularDiameter: {
		name: "angular",
		kind: DistanceKind,
		abs:  func(e *flrw.Engine, z float64) float64 { return e.AngularDiameter(z).Mpc() },
		rel: func(e *flrw.Engine, z1, z2 float64) float64 {
			return e.AngularDiameterBetween(z1, z2).Mpc()
		},
		table: AngularDiameter, scale: 1,
	},
	LightTravel: {
		name: "light-travel",
		kind: DistanceKind,
		abs: func(e *flrw.Engine, z float64) float64 {
			return units.LightDistance(e.Lookback(z)).Mpc()
		},
		rel: func(e *flrw.Engine, z1, z2 float64) float64 {
			return units.LightDistance(e.LookbackBetween(z1, z2)).Mpc()
		},
		table: LightTravel, scale: 1,
	},
	Lookback: {
		name:  "lookback",
		kind:  TimeKind,
		abs:   func(e *flrw.Engine, z float64) float64 { return e.Lookback(z).Gyr() },
		rel:   func(e *flrw.Engine, z1, z2 float64) float64 { return e.LookbackBetween(z1, z2).Gyr() },
		table: LightTravel, scale: units.SpeedOfLight,
	},
	Conformal: {
		name: "conformal",
		kind: TimeKind,
		abs: func(e *flrw.Engine, z float64) float64 {
			return units.LightTime(e.Comoving(z)).Gyr()
		},
		rel: func(e *flrw.Engine, z1, z2 float64) float64 {
			return units.LightTime(e.ComovingBetween(z1, z2)).Gyr()
		},
		table: Comoving, scale: units.SpeedOfLight,
	},
}

// Measures returns every Measure in declaration order.
func Measures() []Measure {
	out := make([]Measure, numMeasures)
	for i := range out {
		out[i] = Measure(i)
	}
	return out
}

// Valid reports whether m is one of the declared measures.
func (m Measure) Valid() bool { return m >= 0 && m < numMeasures }

func (m Measure) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Measure(%d)", int(m))
	}
	return measureDefs[m].name
}

// Kind returns whether m is a distance or a time.
func (m Measure) Kind() Kind {
	if !m.Valid() {
		panic(fmt.Sprintf("Invalid measure %d.", int(m)))
	}
	return measureDefs[m].kind
}

// Unit returns the unit values of m are reported in: Mpc or Gyr.
func (m Measure) Unit() units.Unit {
	if m.Kind() == TimeKind {
		return units.Gyr
	}
	return units.Mpc
}

// ParseMeasure returns the Measure with the given name. Names are
// case-insensitive and a trailing "-distance" or "-time" is ignored.
func ParseMeasure(name string) (Measure, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "-distance"), "-time")
	for i := range measureDefs {
		if measureDefs[i].name == name {
			return Measure(i), nil
		}
	}

	names := make([]string, len(measureDefs))
	for i := range measureDefs {
		names[i] = measureDefs[i].name
	}
	return 0, fmt.Errorf(
		"measure '%s' isn't one of %s", name, strings.Join(names, ", "),
	)
}

// Epoch is any value which identifies a moment in cosmic history by its
// redshift.
type Epoch interface {
	Z() float64
}

// Z is a bare redshift.
type Z float64

func (z Z) Z() float64 { return float64(z) }

// Forward returns measure m at redshift z, in Mpc or Gyr.
func (mod *Model) Forward(m Measure, z float64) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("cosmo: invalid measure %d", int(m))
	}
	if err := CheckRedshift("Model.Forward", z); err != nil {
		return 0, err
	}
	return reached("Model.Forward", z, measureDefs[m].abs(mod.engine, z))
}

// ForwardBetween returns measure m between an observer at z1 and a source
// at z2, in Mpc or Gyr. Comoving distances and times subtract. The other
// distances are built from the transverse comoving distance between the two
// epochs, so that e.g. the relative angular diameter distance is
// D_M(z1, z2) / (1 + z2).
func (mod *Model) ForwardBetween(m Measure, z1, z2 float64) (float64, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("cosmo: invalid measure %d", int(m))
	}
	if err := CheckRedshift("Model.ForwardBetween", z1); err != nil {
		return 0, err
	}
	if err := CheckRedshift("Model.ForwardBetween", z2); err != nil {
		return 0, err
	}
	v := measureDefs[m].rel(mod.engine, z1, z2)
	if math.IsNaN(v) && math.IsNaN(measureDefs[m].abs(mod.engine, z1)) {
		return reached("Model.ForwardBetween", z1, v)
	}
	return reached("Model.ForwardBetween", z2, v)
}

// At is Forward for any Epoch.
func (mod *Model) At(m Measure, e Epoch) (float64, error) {
	return mod.Forward(m, e.Z())
}

// AtBetween is ForwardBetween for any pair of Epochs.
func (mod *Model) AtBetween(m Measure, e1, e2 Epoch) (float64, error) {
	return mod.ForwardBetween(m, e1.Z(), e2.Z())
}

func (mod *Model) length(m Measure, z float64) (units.Length, error) {
	x, err := mod.Forward(m, z)
	return units.Length(x), err
}

func (mod *Model) duration(m Measure, z float64) (units.Duration, error) {
	x, err := mod.Forward(m, z)
	return units.Duration(x), err
}

// ComovingDistance returns the line-of-sight comoving distance to z.
func (mod *Model) ComovingDistance(z float64) (units.Length, error) {
	return mod.length(Comoving, z)
}

// TransverseComovingDistance returns the transverse comoving distance to z.
func (mod *Model) TransverseComovingDistance(z float64) (units.Length, error) {
	return mod.length(TransverseComoving, z)
}

// LuminosityDistance returns the luminosity distance to z.
func (mod *Model) LuminosityDistance(z float64) (units.Length, error) {
	return mod.length(Luminosity, z)
}

// AngularDiameterDistance returns the angular diameter distance to z.
func (mod *Model) AngularDiameterDistance(z float64) (units.Length, error) {
	return mod.length(AngularDiameter, z)
}

// LightTravelDistance returns c times the lookback time to z.
func (mod *Model) LightTravelDistance(z float64) (units.Length, error) {
	return mod.length(LightTravel, z)
}

// LookbackTime returns the lookback time to z.
func (mod *Model) LookbackTime(z float64) (units.Duration, error) {
	return mod.duration(Lookback, z)
}

// ConformalTime returns the conformal lookback time to z.
func (mod *Model) ConformalTime(z float64) (units.Duration, error) {
	return mod.duration(Conformal, z)
}
