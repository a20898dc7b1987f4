package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/cosmoconv/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of cosmoconv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cosmoconv %s\n", version.Source())
			return err
		},
	}
}

func exampleConfigCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Print an example config file",
		Long: `example-config prints a config file describing the default model, with
every variable documented. Save it and pass it with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := DefaultFileConfig()
			text := config.ExampleConfig()
			if asYAML {
				var err error
				if text, err = config.ExampleYAML(); err != nil {
					return err
				}
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the config as YAML")
	return cmd
}
