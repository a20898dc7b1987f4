/*
package cosmo builds FLRW cosmologies and converts between redshift and the
distances and times that describe how far away an epoch is.

A Model is built once by New (or Default, Planck) and is immutable
afterwards: every method is safe for concurrent use. Forward conversions
(redshift to measure) evaluate the integrals directly. Inverse conversions
(measure to redshift) use monotone interpolation tables built during
construction.

	mod, err := cosmo.New(0.7, 0.3, cosmo.WithCurvature(0.05))
	if err != nil {
		return err
	}
	d, err := mod.LuminosityDistance(1.0)
	z, err := mod.Invert(cosmo.Luminosity, d.Mpc())
*/
package cosmo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/cosmoconv/flrw"
	"github.com/phil-mansfield/cosmoconv/logging"
	"github.com/phil-mansfield/cosmoconv/math/interpolate"
)

// Model is a FLRW cosmology together with the tables needed to invert its
// distance and time measures.
type Model struct {
	id      uuid.UUID
	p       Params
	variant Variant
	engine  *flrw.Engine
	scheme  interpolate.Scheme

	// Sampled redshifts and the value of every distance measure at them.
	zs   []float64
	vals [numMeasures][]float64
	inv  [numMeasures]*inverse
}

// tabulated lists the measures which own an inverse table. Time measures
// reuse the tables of the distances they are proportional to.
var tabulated = []Measure{
	Comoving, TransverseComoving, Luminosity, AngularDiameter, LightTravel,
}

// New builds a flat LambdaCDM model with Hubble parameter h = H0 / (100
// km/s/Mpc) and matter density omegaM, modified by opts. OmegaL is derived
// from closure.
func New(h, omegaM float64, opts ...Option) (*Model, error) {
	start := time.Now()

	s := newSettings(h, omegaM)
	s.loadOptions(opts)
	if err := s.resolve("cosmo.New"); err != nil {
		return nil, err
	}
	log := s.cfg.logger()

	mod := &Model{
		id:      uuid.New(),
		p:       s.p,
		variant: s.p.Variant(),
		scheme:  s.cfg.Scheme,
		engine: flrw.New(flrw.Params{
			H: s.p.H, OmegaM: s.p.OmegaM, OmegaR: s.p.OmegaR,
			OmegaK: s.p.OmegaK, OmegaL: s.p.OmegaL, W0: s.p.W0, Wa: s.p.Wa,
		}),
	}
	if a, ok := mod.engine.Bounce(); ok {
		return nil, paramError("cosmo.New", "OmegaL", s.p.OmegaL, fmt.Sprintf(
			"low enough for a big bang, but H^2 <= 0 at z = %.4g", 1/a-1,
		))
	}

	zs, err := Sample(s.cfg.Sampler)
	if err != nil {
		return nil, err
	}
	mod.zs = zs
	if err := mod.tabulate(s.cfg.workers()); err != nil {
		return nil, err
	}

	for _, m := range tabulated {
		inv, dropped, err := newInverse(m, s.cfg.Scheme, mod.zs, mod.vals[m])
		if err != nil {
			return nil, err
		}
		if dropped > 0 {
			log.Debug("model.samples.dropped", "measure", m.String(), "count", dropped)
		}
		log.Debug("model.inverse",
			"measure", m.String(), "zlo", inv.limLo, "zhi", inv.limHi,
			"turnlo", inv.turnLo, "turnhi", inv.turnHi)
		mod.inv[m] = inv
	}

	log.Info("model.built",
		"id", mod.id.String(), "variant", mod.variant.String(),
		"samples", len(zs), "workers", s.cfg.workers(),
		"elapsed", time.Since(start), "mem", logging.MemString())
	return mod, nil
}

// NewCurved builds a LambdaCDM model with curvature omegaK.
func NewCurved(h, omegaM, omegaK float64, opts ...Option) (*Model, error) {
	return New(h, omegaM, append([]Option{WithCurvature(omegaK)}, opts...)...)
}

// NewFull builds a LambdaCDM model with curvature and radiation.
func NewFull(h, omegaM, omegaK, omegaR float64, opts ...Option) (*Model, error) {
	return New(h, omegaM, append([]Option{
		WithCurvature(omegaK), WithRadiation(omegaR),
	}, opts...)...)
}

// NewCPL builds a model with curvature, radiation and a CPL dark energy
// equation of state, w(a) = w0 + wa (1 - a).
func NewCPL(
	h, omegaM, omegaK, omegaR, w0, wa float64, opts ...Option,
) (*Model, error) {
	return New(h, omegaM, append([]Option{
		WithCurvature(omegaK), WithRadiation(omegaR), WithEOS(w0, wa),
	}, opts...)...)
}

// tabulate evaluates every tabulated measure at every sampled redshift.
// Samples are split into contiguous blocks, one per goroutine, and Wait is
// the barrier before the tables are built.
func (mod *Model) tabulate(workers int) error {
	n := len(mod.zs)
	for _, m := range tabulated {
		mod.vals[m] = make([]float64, n)
	}

	block := (n + workers - 1) / workers
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for start := 0; start < n; start += block {
		end := min(start+block, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				for _, m := range tabulated {
					mod.vals[m][i] = measureDefs[m].abs(mod.engine, mod.zs[i])
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ID uniquely identifies the model. Two models built from the same
// parameters have different IDs.
func (mod *Model) ID() uuid.UUID { return mod.id }

// Params returns the model's parameters.
func (mod *Model) Params() Params { return mod.p }

// Variant returns the family the model belongs to.
func (mod *Model) Variant() Variant { return mod.variant }

// Scheme returns the interpolation scheme of the inverse tables.
func (mod *Model) Scheme() interpolate.Scheme { return mod.scheme }

// Sample returns the redshift grid and the value of m at each redshift, in
// Mpc or Gyr. The returned slices are copies.
func (mod *Model) Sample(m Measure) (zs, vals []float64) {
	def := &measureDefs[m]
	zs = append([]float64{}, mod.zs...)
	vals = append([]float64{}, mod.vals[def.table]...)
	for i := range vals {
		vals[i] /= def.scale
	}
	return zs, vals
}

func (mod *Model) String() string {
	p := &mod.p
	s := fmt.Sprintf("%s(h=%g, OmegaM=%g, OmegaR=%.4g, OmegaK=%g, OmegaL=%.6g",
		mod.variant, p.H, p.OmegaM, p.OmegaR, p.OmegaK, p.OmegaL)
	if mod.variant.DarkEnergy == CPL {
		s += fmt.Sprintf(", w0=%g, wa=%g", p.W0, p.Wa)
	}
	if p.HasBaryons() {
		s += fmt.Sprintf(", OmegaB=%g", p.OmegaB)
	}
	return s + ")"
}
