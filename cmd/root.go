/*
package cmd contains the cosmoconv command line tool: converting between
redshifts, scale factors and the distance and time measures of a cosmology,
tabulating measures, and describing the model in use.
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/logging"
)

// Execute runs the cosmoconv command line tool and exits on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// session is the state shared by every command of one invocation. The
// config is read once, before any command runs, and never changed after.
type session struct {
	configPath string
	logMode    string
	planck     bool

	config *FileConfig
}

// NewRootCmd returns the cosmoconv command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:   "cosmoconv",
		Short: "Convert between redshift, distance and time in FLRW cosmologies",
		Long: `cosmoconv converts redshifts, scale factors, distances and times into one
another for a flat, open or closed FLRW cosmology. The model is described by
a config file, given with --config or the ` + ConfigEnv + ` environment
variable, and defaults to h = 0.69, OmegaM = 0.29 with CMB radiation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return s.load()
		},
	}

	cmd.PersistentFlags().StringVarP(&s.configPath, "config", "c", "",
		"config file, [cosmoconv] or .yaml (default $"+ConfigEnv+")")
	cmd.PersistentFlags().StringVar(&s.logMode, "log", "",
		"log model construction to stderr: nil, performance or debug")
	cmd.PersistentFlags().BoolVar(&s.planck, "planck", false,
		"use the Planck 2018 cosmology instead of the configured one")

	cmd.AddCommand(
		convertCmd(s), tableCmd(s), infoCmd(s),
		exampleConfigCmd(), versionCmd(),
	)
	return cmd
}

// load reads the environment and config file, then applies flag overrides.
func (s *session) load() error {
	_ = godotenv.Load(".env")

	path := s.configPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}

	s.config = DefaultFileConfig()
	if path != "" {
		if err := s.config.ReadConfig(path); err != nil {
			return err
		}
	}

	if s.logMode != "" {
		if _, err := logging.ParseFlag(s.logMode); err != nil {
			return err
		}
		s.config.LogMode = s.logMode
	}
	if s.planck {
		s.config.Planck = true
	}
	return nil
}

// model builds the configured cosmology, logging to the command's stderr.
func (s *session) model(cmd *cobra.Command) (*cosmo.Model, error) {
	return s.config.Model(cmd.ErrOrStderr())
}
