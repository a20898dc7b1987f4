package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/units"
)

// tableConfig describes the rows printed by the table command.
type tableConfig struct {
	measure    string
	zMin, zMax float64
	n          int
	log        bool
	sampled    bool
	unit       string
}

func (tc *tableConfig) grid() ([]float64, error) {
	switch {
	case tc.n < 2:
		return nil, fmt.Errorf("--n is %d, but a table needs at least 2 rows", tc.n)
	case !(tc.zMin > -1) || !(tc.zMax > tc.zMin) || math.IsInf(tc.zMax, 0):
		return nil, fmt.Errorf("[zmin, zmax] = [%g, %g] isn't a finite range "+
			"with zmin > -1", tc.zMin, tc.zMax)
	case tc.log && !(tc.zMin > 0):
		return nil, fmt.Errorf("--log needs zmin > 0, but zmin = %g", tc.zMin)
	}

	zs := make([]float64, tc.n)
	if tc.log {
		return floats.LogSpan(zs, tc.zMin, tc.zMax), nil
	}
	return floats.Span(zs, tc.zMin, tc.zMax), nil
}

func tableCmd(s *session) *cobra.Command {
	tc := &tableConfig{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a measure over a range of redshifts",
		Example: `  cosmoconv table --measure luminosity --zmin 0.01 --zmax 10 --n 30 --log
  cosmoconv table --measure lookback --sampled`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mod, err := s.model(cmd)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), mod, tc)
		},
	}

	cmd.Flags().StringVarP(&tc.measure, "measure", "m", "comoving", "measure to tabulate")
	cmd.Flags().Float64Var(&tc.zMin, "zmin", 0, "smallest redshift")
	cmd.Flags().Float64Var(&tc.zMax, "zmax", 10, "largest redshift")
	cmd.Flags().IntVarP(&tc.n, "n", "n", 20, "number of rows")
	cmd.Flags().BoolVar(&tc.log, "log", false, "space rows logarithmically in z")
	cmd.Flags().BoolVar(&tc.sampled, "sampled", false,
		"print the model's own inverse table grid between zmin and zmax")
	cmd.Flags().StringVarP(&tc.unit, "unit", "u", "", "unit of the values (default Mpc or Gyr)")
	return cmd
}

func writeTable(w io.Writer, mod *cosmo.Model, tc *tableConfig) error {
	m, err := cosmo.ParseMeasure(tc.measure)
	if err != nil {
		return err
	}
	u := m.Unit()
	if tc.unit != "" {
		if u, err = units.LookupUnit(tc.unit); err != nil {
			return err
		}
	}
	// One unit of m expressed in u.
	scale, err := units.Q(1.0, m.Unit()).In(u)
	if err != nil {
		return err
	}

	var zs, vals []float64
	if tc.sampled {
		allZs, allVals := mod.Sample(m)
		for i := range allZs {
			if allZs[i] >= tc.zMin && allZs[i] <= tc.zMax {
				zs, vals = append(zs, allZs[i]), append(vals, allVals[i])
			}
		}
	} else {
		if zs, err = tc.grid(); err != nil {
			return err
		}
		vals = make([]float64, len(zs))
		for i := range zs {
			if vals[i], err = mod.Forward(m, zs[i]); err != nil {
				return err
			}
		}
	}
	floats.Scale(scale, vals)

	fmt.Fprintf(w, "# %s\n", mod)
	fmt.Fprintf(w, "# %12s %14s\n", "z", fmt.Sprintf("%s [%s]", m, u))
	for i := range zs {
		fmt.Fprintf(w, "%14.6g %14.8g\n", zs[i], vals[i])
	}
	return nil
}
