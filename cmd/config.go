package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/logging"
	"github.com/phil-mansfield/cosmoconv/math/interpolate"
	"github.com/phil-mansfield/cosmoconv/parse"
	"github.com/phil-mansfield/cosmoconv/units"
	"github.com/phil-mansfield/cosmoconv/version"
)

// ConfigEnv names the environment variable holding the config file path
// when --config isn't given.
const ConfigEnv = "COSMOCONV_CONFIG"

// unset marks OmegaR and OmegaB as not given in the file.
const unset = -1

// FileConfig is the contents of a cosmoconv config file. It can be written
// either in the [cosmoconv] key/value format or as YAML.
type FileConfig struct {
	Version string `yaml:"version"`

	H      float64 `yaml:"h"`
	OmegaM float64 `yaml:"omegaM"`
	OmegaK float64 `yaml:"omegaK"`
	OmegaR float64 `yaml:"omegaR"`
	OmegaB float64 `yaml:"omegaB"`
	W0     float64 `yaml:"w0"`
	Wa     float64 `yaml:"wa"`
	Tcmb   float64 `yaml:"tcmb"`
	Neff   float64 `yaml:"neff"`
	Planck bool    `yaml:"planck"`

	Scheme  string `yaml:"scheme"`
	Workers int64  `yaml:"workers"`
	LogMode string `yaml:"logMode"`

	NegativeSamples int64   `yaml:"negativeSamples"`
	LinearSamples   int64   `yaml:"linearSamples"`
	LogSamples      int64   `yaml:"logSamples"`
	ZMax            float64 `yaml:"zMax"`
}

// DefaultFileConfig returns the config used when no file is given. It
// describes the same model as cosmo.Default.
func DefaultFileConfig() *FileConfig {
	sc := cosmo.DefaultSamplerConfig()
	return &FileConfig{
		Version: version.SourceVersion,
		H:       0.69, OmegaM: 0.29, OmegaR: unset, OmegaB: unset,
		W0: -1, Tcmb: float64(cosmo.DefaultTcmb), Neff: 3.04,
		Scheme:          interpolate.SteffenScheme.String(),
		LogMode:         logging.Nil.String(),
		NegativeSamples: int64(sc.NegativeSamples),
		LinearSamples:   int64(sc.LinearSamples),
		LogSamples:      int64(sc.LogSamples),
		ZMax:            sc.ZMax,
	}
}

func (config *FileConfig) vars() *parse.VarSet {
	def := DefaultFileConfig()
	vars := parse.NewVarSet("cosmoconv")
	vars.String(&config.Version, "Version", def.Version)
	vars.Float(&config.H, "H", def.H)
	vars.Float(&config.OmegaM, "OmegaM", def.OmegaM)
	vars.Float(&config.OmegaK, "OmegaK", def.OmegaK)
	vars.Float(&config.OmegaR, "OmegaR", def.OmegaR)
	vars.Float(&config.OmegaB, "OmegaB", def.OmegaB)
	vars.Float(&config.W0, "W0", def.W0)
	vars.Float(&config.Wa, "Wa", def.Wa)
	vars.Float(&config.Tcmb, "Tcmb", def.Tcmb)
	vars.Float(&config.Neff, "Neff", def.Neff)
	vars.Bool(&config.Planck, "Planck", def.Planck)
	vars.String(&config.Scheme, "Scheme", def.Scheme)
	vars.Int(&config.Workers, "Workers", def.Workers)
	vars.String(&config.LogMode, "LogMode", def.LogMode)
	vars.Int(&config.NegativeSamples, "NegativeSamples", def.NegativeSamples)
	vars.Int(&config.LinearSamples, "LinearSamples", def.LinearSamples)
	vars.Int(&config.LogSamples, "LogSamples", def.LogSamples)
	vars.Float(&config.ZMax, "ZMax", def.ZMax)
	return vars
}

// ReadConfig reads a config file and returns an error, if applicable. Files
// ending in .yaml or .yml are read as YAML, everything else as a
// [cosmoconv] file.
func (config *FileConfig) ReadConfig(fname string) error {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	if hasYAMLExt(fname) {
		*config = *DefaultFileConfig()
		dec := yaml.NewDecoder(bytes.NewReader(bs))
		dec.KnownFields(true)
		if err = dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("I could not parse the YAML config file %s: %w",
				fname, err)
		}
	} else if err = parse.Parse(fname, bs, config.vars()); err != nil {
		return err
	}

	return config.validate()
}

func hasYAMLExt(fname string) bool {
	ext := strings.ToLower(filepath.Ext(fname))
	return ext == ".yaml" || ext == ".yml"
}

// validate checks the fields that can be checked without building a model.
// Physical parameters are checked by cosmo.New.
func (config *FileConfig) validate() error {
	if err := version.CheckCompatible(config.Version); err != nil {
		return fmt.Errorf("I couldn't use the 'Version' variable: %w", err)
	}
	if _, err := interpolate.ParseScheme(config.Scheme); err != nil {
		return fmt.Errorf("The 'Scheme' variable is set to '%s', which I "+
			"don't recognize: %w", config.Scheme, err)
	}
	if _, err := logging.ParseFlag(config.LogMode); err != nil {
		return fmt.Errorf("The 'LogMode' variable is set to '%s', which I "+
			"don't recognize: %w", config.LogMode, err)
	}
	if config.Workers < 0 {
		return fmt.Errorf("The 'Workers' variable is set to %d, but it "+
			"can't be negative.", config.Workers)
	}
	if config.OmegaR < 0 && config.OmegaR != unset {
		return fmt.Errorf("The 'OmegaR' variable is set to %g, but it must "+
			"be >= 0, or %d to derive it from Tcmb and Neff.", config.OmegaR, unset)
	}
	return nil
}

// Options translates the config into options for cosmo.New. The model
// parameters are left out when Planck is set.
func (config *FileConfig) Options(logger *slog.Logger) []cosmo.Option {
	scheme, _ := interpolate.ParseScheme(config.Scheme)

	sc := cosmo.DefaultSamplerConfig()
	sc.NegativeSamples = int(config.NegativeSamples)
	sc.LinearSamples = int(config.LinearSamples)
	sc.LogSamples = int(config.LogSamples)
	sc.ZMax = config.ZMax

	opts := []cosmo.Option{
		cosmo.WithSampler(sc),
		cosmo.WithScheme(scheme),
		cosmo.WithWorkers(int(config.Workers)),
		cosmo.WithLogger(logger),
	}
	if config.Planck {
		return opts
	}

	opts = append(opts,
		cosmo.WithCurvature(config.OmegaK),
		cosmo.WithEOS(config.W0, config.Wa),
		cosmo.WithCMB(units.Temperature(config.Tcmb), config.Neff),
	)
	if config.OmegaR != unset {
		opts = append(opts, cosmo.WithRadiation(config.OmegaR))
	}
	if config.OmegaB != unset {
		opts = append(opts, cosmo.WithBaryons(config.OmegaB))
	}
	return opts
}

// Model builds the cosmology the config describes, logging construction to
// w at the config's LogMode.
func (config *FileConfig) Model(w io.Writer) (*cosmo.Model, error) {
	mode, err := logging.ParseFlag(config.LogMode)
	if err != nil {
		return nil, err
	}
	opts := config.Options(logging.New(w, mode))
	if config.Planck {
		return cosmo.Planck(opts...)
	}
	return cosmo.New(config.H, config.OmegaM, opts...)
}

// ExampleConfig returns an example configuration file.
func (config *FileConfig) ExampleConfig() string {
	def := DefaultFileConfig()
	return fmt.Sprintf(`[cosmoconv]
# Target version of cosmoconv. Files written for a later version, or for a
# different major version, are rejected.
Version = %s

# If true, the Planck 2018 best fit is used and the model parameters below
# are ignored.
Planck = false

# Model parameters. H is H0 / (100 km/s/Mpc). OmegaL is set by closure,
# OmegaL = 1 - OmegaM - OmegaR - OmegaK.
H      = %g
OmegaM = %g
OmegaK = %g

# Radiation. OmegaR = -1 derives it from the CMB temperature (in K) and the
# effective number of neutrino species.
OmegaR = %d
Tcmb   = %g
Neff   = %g

# Baryon density. -1 leaves it unset, which makes baryon densities
# unavailable.
OmegaB = %d

# CPL dark energy, w(z) = W0 + Wa z / (1 + z).
W0 = %g
Wa = %g

# Interpolation of the inverse tables: steffen, fritsch-butland or linear.
Scheme = %s

# Goroutines used while building tables. 0 uses every CPU.
Workers = %d

# Logging to stderr: nil, performance or debug.
LogMode = %s

# Redshift grid of the inverse tables.
NegativeSamples = %d
LinearSamples   = %d
LogSamples      = %d
ZMax            = %g
`, def.Version, def.H, def.OmegaM, def.OmegaK, unset, def.Tcmb, def.Neff,
		unset, def.W0, def.Wa, def.Scheme, def.Workers, def.LogMode, def.NegativeSamples,
		def.LinearSamples, def.LogSamples, def.ZMax)
}

// ExampleYAML returns the example configuration in YAML form.
func (config *FileConfig) ExampleYAML() (string, error) {
	bs, err := yaml.Marshal(DefaultFileConfig())
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
