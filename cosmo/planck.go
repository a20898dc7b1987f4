package cosmo

// Default builds the reference cosmology used by the command line tool: a
// flat LambdaCDM model with h = 0.69, OmegaM = 0.29 and radiation from a
// 2.7255 K CMB with 3.04 neutrino species.
func Default(opts ...Option) (*Model, error) {
	return New(0.69, 0.29, append([]Option{
		WithCMB(DefaultTcmb, 3.04),
	}, opts...)...)
}

// Planck builds the flat LambdaCDM best fit of Planck 2018
// (TT,TE,EE+lowE+lensing+BAO), including radiation and baryons.
func Planck(opts ...Option) (*Model, error) {
	const (
		h          = 0.6766
		omegaM     = 0.3111
		omegaBh2   = 0.02242
		planckNeff = 3.046
	)
	return New(h, omegaM, append([]Option{
		WithCMB(DefaultTcmb, planckNeff),
		WithBaryons(omegaBh2 / (h * h)),
	}, opts...)...)
}
