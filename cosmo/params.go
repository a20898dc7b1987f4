package cosmo

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/phil-mansfield/cosmoconv/logging"
	"github.com/phil-mansfield/cosmoconv/math/interpolate"
	"github.com/phil-mansfield/cosmoconv/units"
)

const (
	// DefaultTcmb is the present-day CMB temperature (Fixsen 2009).
	DefaultTcmb units.Temperature = 2.7255
	// DefaultNeff is the standard effective number of neutrino species.
	DefaultNeff = 3.046

	// photonDensity is Omega_gamma h^2 / Tcmb^4 with Tcmb in Kelvin.
	photonDensity = 4.48131e-7
)

// Geometry is the sign of the spatial curvature.
type Geometry int

const (
	Flat Geometry = iota
	// Open universes have OmegaK > 0.
	Open
	// Closed universes have OmegaK < 0.
	Closed
)

func (g Geometry) String() string {
	switch g {
	case Flat:
		return "Flat"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

// DarkEnergy is the dark energy model.
type DarkEnergy int

const (
	// Lambda is a cosmological constant, w = -1.
	Lambda DarkEnergy = iota
	// CPL is the Chevallier-Polarski-Linder equation of state,
	// w(a) = w0 + wa (1 - a).
	CPL
)

func (de DarkEnergy) String() string {
	switch de {
	case Lambda:
		return "LambdaCDM"
	case CPL:
		return "w0waCDM"
	}
	return fmt.Sprintf("DarkEnergy(%d)", int(de))
}

// Variant tags the family a model belongs to.
type Variant struct {
	Geometry   Geometry
	DarkEnergy DarkEnergy
}

func (v Variant) String() string {
	return v.Geometry.String() + v.DarkEnergy.String()
}

// Params are the parameters of a model at z = 0. OmegaL is always derived
// from closure. OmegaB is negative when no baryon density was given.
type Params struct {
	H                              float64
	OmegaM, OmegaR, OmegaK, OmegaL float64
	OmegaB                         float64
	W0, Wa                         float64
	Tcmb                           units.Temperature
	Neff                           float64
}

// HasBaryons reports whether a baryon density was supplied.
func (p Params) HasBaryons() bool { return p.OmegaB >= 0 }

// Variant classifies p.
func (p Params) Variant() Variant {
	v := Variant{Flat, Lambda}
	switch {
	case p.OmegaK > 0:
		v.Geometry = Open
	case p.OmegaK < 0:
		v.Geometry = Closed
	}
	if p.W0 != -1 || p.Wa != 0 {
		v.DarkEnergy = CPL
	}
	return v
}

// CMBRadiation returns the radiation density parameter of photons at tcmb
// plus neff species of massless neutrinos.
func CMBRadiation(h float64, tcmb units.Temperature, neff float64) float64 {
	t2 := tcmb.Kelvin() * tcmb.Kelvin()
	omegaGamma := photonDensity * t2 * t2 / (h * h)
	return omegaGamma * (1 + neff*7.0/8*math.Pow(4.0/11, 4.0/3))
}

// Config controls how a model is built. The zero value is not useful, start
// from DefaultConfig.
type Config struct {
	Sampler SamplerConfig
	// Scheme is the interpolation algorithm of the inverse tables. It must
	// preserve monotonicity.
	Scheme interpolate.Scheme
	// Workers is the number of goroutines used to fill the tables. Values
	// <= 0 mean runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives construction records. nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the Config used when none is given.
func DefaultConfig() Config {
	return Config{
		Sampler: DefaultSamplerConfig(),
		Scheme:  interpolate.SteffenScheme,
	}
}

func (c *Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func (c *Config) validate() error {
	if !c.Scheme.Monotonic() {
		return fmt.Errorf(
			"cosmo: the %s interpolation scheme cannot be used for inverse "+
				"tables because it does not preserve monotonicity", c.Scheme,
		)
	}
	return c.Sampler.validate()
}

type settings struct {
	p         Params
	radiation bool
	cmb       bool
	cfg       Config
}

// Option modifies the model built by New.
type Option func(*settings)

// WithCurvature sets OmegaK.
func WithCurvature(omegaK float64) Option {
	return func(s *settings) { s.p.OmegaK = omegaK }
}

// WithRadiation sets OmegaR. It takes precedence over the radiation
// implied by WithCMB.
func WithRadiation(omegaR float64) Option {
	return func(s *settings) {
		s.p.OmegaR = omegaR
		s.radiation = true
	}
}

// WithCMB sets the CMB temperature and effective neutrino count and derives
// OmegaR from them with CMBRadiation.
func WithCMB(tcmb units.Temperature, neff float64) Option {
	return func(s *settings) {
		s.p.Tcmb, s.p.Neff = tcmb, neff
		s.cmb = true
	}
}

// WithEOS sets the CPL dark energy equation of state.
func WithEOS(w0, wa float64) Option {
	return func(s *settings) { s.p.W0, s.p.Wa = w0, wa }
}

// WithBaryons sets OmegaB.
func WithBaryons(omegaB float64) Option {
	return func(s *settings) { s.p.OmegaB = omegaB }
}

// WithConfig replaces the whole construction Config.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithLogger sets the logger which receives construction records.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.cfg.Logger = l }
}

// WithWorkers sets the number of goroutines used during construction.
func WithWorkers(n int) Option {
	return func(s *settings) { s.cfg.Workers = n }
}

// WithScheme sets the interpolation scheme of the inverse tables.
func WithScheme(scheme interpolate.Scheme) Option {
	return func(s *settings) { s.cfg.Scheme = scheme }
}

// WithSampler sets the redshift grid the inverse tables are built on.
func WithSampler(sc SamplerConfig) Option {
	return func(s *settings) { s.cfg.Sampler = sc }
}

func (s *settings) loadOptions(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// resolve validates the parameters and fills in the derived ones.
func (s *settings) resolve(op string) error {
	p := &s.p
	if !(p.H > 0) || math.IsInf(p.H, 0) {
		return paramError(op, "h", p.H, "finite and > 0")
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"OmegaM", p.OmegaM}, {"OmegaR", p.OmegaR},
		{"Tcmb", p.Tcmb.Kelvin()}, {"Neff", p.Neff},
	}
	for _, x := range nonNegative {
		if !(x.val >= 0) || math.IsInf(x.val, 0) {
			return paramError(op, x.name, x.val, "finite and >= 0")
		}
	}

	finite := []struct {
		name string
		val  float64
	}{{"OmegaK", p.OmegaK}, {"w0", p.W0}, {"wa", p.Wa}}
	for _, x := range finite {
		if math.IsNaN(x.val) || math.IsInf(x.val, 0) {
			return paramError(op, x.name, x.val, "finite")
		}
	}

	if p.OmegaB != unsetBaryons {
		if !(p.OmegaB >= 0) || !(p.OmegaB <= p.OmegaM) {
			return paramError(op, "OmegaB", p.OmegaB, "in [0, OmegaM]")
		}
	}

	if s.cmb && !s.radiation {
		p.OmegaR = CMBRadiation(p.H, p.Tcmb, p.Neff)
	}
	p.OmegaL = 1 - p.OmegaM - p.OmegaR - p.OmegaK

	return s.cfg.validate()
}

const unsetBaryons = -1

func newSettings(h, omegaM float64) *settings {
	return &settings{
		p: Params{
			H: h, OmegaM: omegaM, OmegaB: unsetBaryons,
			W0: -1, Wa: 0, Tcmb: DefaultTcmb, Neff: DefaultNeff,
		},
		cfg: DefaultConfig(),
	}
}
