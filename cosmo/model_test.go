package cosmo

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/cosmoconv/logging"
	"github.com/phil-mansfield/cosmoconv/math/interpolate"
)

// must unwraps the result of a constructor which cannot fail.
func must(mod *Model, err error) *Model {
	if err != nil {
		panic(err)
	}
	return mod
}

func TestClosure(t *testing.T) {
	tests := []struct {
		h, om, ok, or float64
		w0, wa        float64
		variant       Variant
	}{
		{0.7, 0.3, 0, 0, -1, 0, Variant{Flat, Lambda}},
		{0.69, 0.29, 0.06, 0, -1, 0, Variant{Open, Lambda}},
		{0.69, 0.29, -0.05, 8.8e-5, -1, 0, Variant{Closed, Lambda}},
		{0.67, 0.31, 0, 9.1e-5, -0.9, 0.1, Variant{Flat, CPL}},
		{0.72, 0.25, 0.02, 1e-4, -1.1, -0.3, Variant{Open, CPL}},
		{0.5, 1.0, 0, 0, -1, 0, Variant{Flat, Lambda}},
	}

	for i, test := range tests {
		mod, err := NewCPL(test.h, test.om, test.ok, test.or, test.w0, test.wa)
		require.NoError(t, err, "test %d", i)

		p := mod.Params()
		assert.InDelta(t, 1, p.OmegaM+p.OmegaR+p.OmegaK+p.OmegaL, 1e-9, "test %d", i)
		assert.Equal(t, test.variant, mod.Variant(), "test %d", i)
		assert.False(t, p.HasBaryons(), "test %d", i)
	}
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "FlatLambdaCDM", Variant{Flat, Lambda}.String())
	assert.Equal(t, "Closedw0waCDM", Variant{Closed, CPL}.String())

	mod := must(NewCPL(0.7, 0.3, 0.1, 0, -0.9, 0))
	assert.Contains(t, mod.String(), "Openw0waCDM(h=0.7")
	assert.Contains(t, mod.String(), "w0=-0.9")
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		h, om float64
		opts  []Option
		name  string
	}{
		{0, 0.3, nil, "h"},
		{-0.7, 0.3, nil, "h"},
		{math.NaN(), 0.3, nil, "h"},
		{math.Inf(1), 0.3, nil, "h"},
		{0.7, -0.1, nil, "OmegaM"},
		{0.7, 0.3, []Option{WithRadiation(-1e-5)}, "OmegaR"},
		{0.7, 0.3, []Option{WithCurvature(math.NaN())}, "OmegaK"},
		{0.7, 0.3, []Option{WithEOS(math.Inf(-1), 0)}, "w0"},
		{0.7, 0.3, []Option{WithBaryons(0.4)}, "OmegaB"},
		{0.7, 0.3, []Option{WithBaryons(-0.5)}, "OmegaB"},
		{0.7, 0.3, []Option{WithCMB(-2.7, 3)}, "Tcmb"},
		{0.7, 0.3, []Option{WithCMB(2.7, -3)}, "Neff"},
		{0.7, 0.05, []Option{WithCurvature(-1)}, "OmegaL"},
	}

	for i, test := range tests {
		mod, err := New(test.h, test.om, test.opts...)
		assert.Nil(t, mod, "test %d", i)
		require.Error(t, err, "test %d", i)
		assert.ErrorIs(t, err, ErrInvalidParameter, "test %d", i)
		assert.ErrorIs(t, err, ErrDomain, "test %d", i)

		var derr *DomainError
		require.True(t, errors.As(err, &derr), "test %d", i)
		assert.Equal(t, test.name, derr.Name, "test %d", i)
	}
}

func TestNoBigBang(t *testing.T) {
	// Closed and Lambda dominated enough that H^2 < 0 before z ~ 0.45.
	mod, err := NewCurved(0.7, 0.05, -1.0)
	assert.Nil(t, mod)
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "big bang")

	_, err = NewCurved(0.7, 0.3, -0.1)
	assert.NoError(t, err)
}

func TestRecollapse(t *testing.T) {
	// OmegaL < 0 stops the expansion at a^3 ~ 3, z ~ -0.31.
	mod := must(New(0.7, 1.5))
	require.Less(t, mod.Params().OmegaL, 0.0)

	_, err := mod.ComovingDistance(-0.5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mod.Age(-0.5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mod.ForwardBetween(Comoving, 0.5, -0.5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = mod.E(-0.5)
	assert.ErrorIs(t, err, ErrDomain)

	d, err := mod.ComovingDistance(-0.2)
	require.NoError(t, err)
	z, err := mod.Invert(Comoving, d.Mpc())
	require.NoError(t, err)
	assert.InDelta(t, -0.2, z, 2e-3)

	zLo, _, turnLo, _ := mod.InversionLimit(Comoving)
	assert.True(t, turnLo)
	assert.Greater(t, zLo, -0.31)
	z, err = mod.Invert(Comoving, -1e5)
	require.NoError(t, err)
	assert.Equal(t, zLo, z)
}

func TestAgeWithoutMatter(t *testing.T) {
	mod := must(New(0.7, 0, WithRadiation(0)))
	age, err := mod.Age(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(age.Gyr(), 1))

	lb, err := mod.LookbackTime(1)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Log(2)*mod.HubbleTime().Gyr(), lb.Gyr(), 1e-6)
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(0.7, 0.3, WithScheme(interpolate.CubicScheme))
	assert.Error(t, err)

	sc := DefaultSamplerConfig()
	sc.LogSamples = 1
	_, err = New(0.7, 0.3, WithSampler(sc))
	assert.Error(t, err)
}

func TestUnsetBaryonSentinel(t *testing.T) {
	mod := must(New(0.7, 0.3, WithBaryons(-1)))
	assert.False(t, mod.Params().HasBaryons())
}

func TestCMBRadiation(t *testing.T) {
	mod := must(Default())
	assert.InEpsilon(t, 8.77976e-5, mod.Params().OmegaR, 1e-5)
	assert.Equal(t, Variant{Flat, Lambda}, mod.Variant())

	// An explicit radiation density wins over the CMB.
	mod = must(New(0.7, 0.3, WithRadiation(0), WithCMB(2.7255, 3.046)))
	assert.Equal(t, 0.0, mod.Params().OmegaR)
	assert.Equal(t, 2.7255, mod.Params().Tcmb.Kelvin())

	assert.Equal(t, 0.0, CMBRadiation(0.7, 0, 3.046))
	assert.Greater(t, CMBRadiation(0.7, 2.7255, 3.046), CMBRadiation(0.7, 2.7255, 0))
}

func TestPlanck(t *testing.T) {
	mod := must(Planck())
	p := mod.Params()
	assert.Equal(t, 0.6766, p.H)
	assert.Equal(t, 0.3111, p.OmegaM)
	assert.InDelta(t, 0.04897, p.OmegaB, 1e-5)
	assert.InEpsilon(t, 9.1383e-5, p.OmegaR, 1e-4)

	age, err := mod.Age(0)
	require.NoError(t, err)
	assert.InDelta(t, 13.79, age.Gyr(), 0.01)
}

func TestScenarios(t *testing.T) {
	mod := must(Default())

	d, err := mod.ComovingDistance(0.1)
	require.NoError(t, err)
	assert.InDelta(t, 424.8, d.Mpc(), 0.1)

	d, err = mod.ComovingDistance(1)
	require.NoError(t, err)
	assert.InDelta(t, 3371.6, d.Mpc(), 0.1)

	d, err = mod.LuminosityDistance(1)
	require.NoError(t, err)
	assert.InDelta(t, 6743.1, d.Mpc(), 0.1)

	d, err = mod.AngularDiameterDistance(1)
	require.NoError(t, err)
	assert.InDelta(t, 1685.8, d.Mpc(), 0.1)

	open := must(NewCurved(0.69, 0.29, 0.06))
	assert.Equal(t, Open, open.Variant().Geometry)
	d, err = open.ComovingDistance(0.1)
	require.NoError(t, err)
	assert.InDelta(t, 423.6, d.Mpc(), 0.1)
}

func TestHubbleConstantIsHubbleParameterToday(t *testing.T) {
	models := []*Model{
		must(Default()),
		must(Planck()),
		must(NewCurved(0.69, 0.29, 0.06)),
		must(NewCPL(0.7, 0.3, -0.04, 1e-4, -0.8, 0.3)),
	}
	for i, mod := range models {
		h0, err := mod.HubbleParameter(0)
		require.NoError(t, err)
		assert.Equal(t, mod.HubbleConstant(), h0, "model %d", i)
	}
}

func TestIndependentModels(t *testing.T) {
	m1 := must(Default())
	m2 := must(Default())
	assert.NotEqual(t, m1.ID(), m2.ID())
	assert.Equal(t, m1.Params(), m2.Params())
}

func TestWorkersDoNotChangeTables(t *testing.T) {
	m1 := must(Default(WithWorkers(1)))
	m8 := must(Default(WithWorkers(8)))
	for _, m := range Measures() {
		z1, v1 := m1.Sample(m)
		z8, v8 := m8.Sample(m)
		assert.Equal(t, z1, z8, m.String())
		assert.Equal(t, v1, v8, m.String())
	}
}

func TestSampleIsACopy(t *testing.T) {
	mod := must(Default())
	zs, vals := mod.Sample(Comoving)
	zs[0], vals[0] = 17, 17

	zs2, vals2 := mod.Sample(Comoving)
	assert.NotEqual(t, 17.0, zs2[0])
	assert.NotEqual(t, 17.0, vals2[0])
}

func TestConstructionLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := Default(WithLogger(logging.New(buf, logging.Performance)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=model.built")
	assert.Contains(t, buf.String(), "variant=FlatLambdaCDM")
	assert.NotContains(t, buf.String(), "model.inverse")

	buf.Reset()
	_, err = Default(WithLogger(logging.New(buf, logging.Debug)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=model.inverse")
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheme = interpolate.FritschButlandScheme
	cfg.Workers = 2
	mod := must(New(0.7, 0.3, WithConfig(cfg)))
	assert.Equal(t, interpolate.FritschButlandScheme, mod.Scheme())

	res, err := mod.Check(Comoving, 200, 1e-3, 1e3, 7)
	require.NoError(t, err)
	assert.Less(t, res.Worst, 1e-3)
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Default(); err != nil {
			b.Fatal(err)
		}
	}
}
