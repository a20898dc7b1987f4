package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/cosmoconv/cosmo"
)

func infoCmd(s *session) *cobra.Command {
	var (
		check      int
		zMin, zMax float64
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe the configured cosmology",
		Long: `info prints the parameters, identity and derived scales of the configured
model along with the redshift range each inverse table covers. With --check,
it also converts random redshifts to every measure and back and reports the
worst relative error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mod, err := s.model(cmd)
			if err != nil {
				return err
			}
			if err := writeInfo(cmd.OutOrStdout(), mod); err != nil {
				return err
			}
			if check > 0 {
				return writeCheck(cmd.OutOrStdout(), mod, check, zMin, zMax, seed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&check, "check", 0, "number of round trip conversions per measure")
	cmd.Flags().Float64Var(&zMin, "check-zmin", 1e-3, "smallest redshift of --check")
	cmd.Flags().Float64Var(&zMax, "check-zmax", 10, "largest redshift of --check")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed of --check")
	return cmd
}

func writeInfo(w io.Writer, mod *cosmo.Model) error {
	p := mod.Params()
	age, err := mod.Age(0)
	if err != nil {
		return err
	}
	rho, err := mod.CriticalDensity(0)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "model\t%s\n", mod.Variant())
	fmt.Fprintf(tw, "id\t%s\n", mod.ID())
	fmt.Fprintf(tw, "H0\t%.6g km/s/Mpc\n", mod.HubbleConstant())
	fmt.Fprintf(tw, "OmegaM\t%g\n", p.OmegaM)
	fmt.Fprintf(tw, "OmegaR\t%.6g\n", p.OmegaR)
	fmt.Fprintf(tw, "OmegaK\t%g\n", p.OmegaK)
	fmt.Fprintf(tw, "OmegaL\t%.9g\n", p.OmegaL)
	if p.HasBaryons() {
		fmt.Fprintf(tw, "OmegaB\t%.6g\n", p.OmegaB)
	}
	fmt.Fprintf(tw, "w0, wa\t%g, %g\n", p.W0, p.Wa)
	fmt.Fprintf(tw, "Tcmb, Neff\t%s, %g\n", p.Tcmb, p.Neff)
	fmt.Fprintf(tw, "age\t%s\n", age)
	fmt.Fprintf(tw, "Hubble distance\t%s\n", mod.HubbleDistance())
	fmt.Fprintf(tw, "Hubble time\t%s\n", mod.HubbleTime())
	fmt.Fprintf(tw, "critical density\t%.6g Msun/Mpc^3\n", rho)
	fmt.Fprintf(tw, "interpolation\t%s\n", mod.Scheme())

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "measure\tinvertible z (! turning point, ~ extrapolated)\tvalues")
	for _, m := range cosmo.Measures() {
		zLo, zHi, turnLo, turnHi := mod.InversionLimit(m)
		lo, hi := mod.InversionRange(m)
		fmt.Fprintf(tw, "%s\t%s, %s\t[%.6g, %.6g] %s\n", m,
			limitString(zLo, turnLo), limitString(zHi, turnHi),
			lo, hi, m.Unit())
	}
	return tw.Flush()
}

// limitString marks a redshift limit set by a turning point with "!" and a
// grid edge, past which values are extrapolated, with "~".
func limitString(z float64, turn bool) string {
	if turn {
		return fmt.Sprintf("%.4g!", z)
	}
	return fmt.Sprintf("%.4g~", z)
}

func writeCheck(
	w io.Writer, mod *cosmo.Model, n int, zMin, zMax float64, seed uint64,
) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "measure\tworst |dz|/z\tat z\t(%d draws on [%g, %g])\n", n, zMin, zMax)
	for _, m := range cosmo.Measures() {
		res, err := mod.Check(m, n, zMin, zMax, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%.3g\t%.4g\t\n", m, res.Worst, res.WorstZ)
	}
	return tw.Flush()
}
