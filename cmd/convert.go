package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/cosmoconv/cosmo"
	"github.com/phil-mansfield/cosmoconv/measure"
	"github.com/phil-mansfield/cosmoconv/units"
)

type endpointType int

const (
	redshiftEnd endpointType = iota
	scaleFactorEnd
	measureEnd
)

// endpoint is one side of a conversion: a redshift, a scale factor, or one
// of the model's measures.
type endpoint struct {
	typ endpointType
	m   cosmo.Measure
}

func parseEndpoint(name string) (endpoint, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "z", "redshift":
		return endpoint{typ: redshiftEnd}, nil
	case "a", "scale-factor":
		return endpoint{typ: scaleFactorEnd}, nil
	}
	m, err := cosmo.ParseMeasure(name)
	if err != nil {
		return endpoint{}, fmt.Errorf("'%s' isn't z, a, or a measure: %w", name, err)
	}
	return endpoint{typ: measureEnd, m: m}, nil
}

// endpoints returns every endpoint in the order the "all" target lists them.
func endpoints() []endpoint {
	out := []endpoint{{typ: redshiftEnd}, {typ: scaleFactorEnd}}
	for _, m := range cosmo.Measures() {
		out = append(out, endpoint{typ: measureEnd, m: m})
	}
	return out
}

func (e endpoint) String() string {
	switch e.typ {
	case redshiftEnd:
		return "z"
	case scaleFactorEnd:
		return "a"
	}
	return e.m.String()
}

// redshift interprets q as a value of e. Bare numbers given for a measure
// are read in the measure's natural unit.
func (e endpoint) redshift(mod *cosmo.Model, q units.Quantity) (measure.Redshift, error) {
	switch e.typ {
	case redshiftEnd:
		z, err := q.Scalar()
		if err != nil {
			return measure.Redshift{}, err
		}
		return measure.NewRedshift(z)
	case scaleFactorEnd:
		x, err := q.Scalar()
		if err != nil {
			return measure.Redshift{}, err
		}
		a, err := measure.NewScaleFactor(x)
		if err != nil {
			return measure.Redshift{}, err
		}
		return a.Redshift(), nil
	}

	if q.Dim() == units.Dimensionless {
		q = units.Q(q.Value, e.m.Unit())
	}
	if e.m.Kind() == cosmo.DistanceKind {
		l, err := q.Length()
		if err != nil {
			return measure.Redshift{}, err
		}
		d, err := measure.NewDistance(mod, e.m, l.Mpc())
		if err != nil {
			return measure.Redshift{}, err
		}
		return d.Redshift()
	}
	t, err := q.Duration()
	if err != nil {
		return measure.Redshift{}, err
	}
	v, err := measure.NewTime(mod, e.m, t.Gyr())
	if err != nil {
		return measure.Redshift{}, err
	}
	return v.Redshift()
}

// value returns e at the redshift z. If obs is non-nil, measures are taken
// between an observer at obs and a source at z.
func (e endpoint) value(
	mod *cosmo.Model, obs *measure.Redshift, z measure.Redshift,
) (units.Quantity, error) {
	switch e.typ {
	case redshiftEnd:
		return units.Q(z.Z(), units.One), nil
	case scaleFactorEnd:
		return units.Q(z.ScaleFactor().A(), units.One), nil
	}

	if e.m.Kind() == cosmo.DistanceKind {
		if obs != nil {
			l, err := obs.DistanceTo(mod, e.m, z)
			return l.Quantity(), err
		}
		d, err := z.Distance(mod, e.m)
		return d.Quantity().Quantity(), err
	}
	if obs != nil {
		t, err := obs.TimeTo(mod, e.m, z)
		return t.Quantity(), err
	}
	t, err := z.Time(mod, e.m)
	return t.Quantity().Quantity(), err
}

func convertCmd(s *session) *cobra.Command {
	var from, to, unit string
	var observer float64

	cmd := &cobra.Command{
		Use:   "convert <value> [unit]",
		Short: "Convert a redshift, scale factor, distance or time",
		Long: `convert reads a value of the --from measure and prints it as the --to
measure. Measures are z, a, comoving, transverse, luminosity, angular,
light-travel, lookback and conformal. Distances default to Mpc and times to
Gyr, but any unit can be given, e.g. "convert 2.5 Gly --from light-travel".`,
		Example: `  cosmoconv convert 1 --from z --to luminosity
  cosmoconv convert 3371.5 Mpc --from comoving --to lookback --unit Myr
  cosmoconv convert 0.5 --from a`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mod, err := s.model(cmd)
			if err != nil {
				return err
			}

			q, err := units.ParseQuantity(strings.Join(args, " "))
			if err != nil {
				return err
			}

			var obs *measure.Redshift
			if cmd.Flags().Changed("observer") {
				z, err := measure.NewRedshift(observer)
				if err != nil {
					return err
				}
				obs = &z
			}

			var u *units.Unit
			if unit != "" {
				x, err := units.LookupUnit(unit)
				if err != nil {
					return err
				}
				u = &x
			}

			lines, err := convert(mod, from, to, q, obs, u)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, line := range lines {
				fmt.Fprintln(tw, line)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "z", "measure of the input value")
	cmd.Flags().StringVarP(&to, "to", "t", "all", "measure to convert to, or all")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "unit of the output (default Mpc or Gyr)")
	cmd.Flags().Float64Var(&observer, "observer", 0,
		"redshift of the observer for relative measures")
	return cmd
}

// convert carries out one conversion and returns tab separated output
// lines. With to = "all", every endpoint is listed and u is only applied to
// the endpoints it has the dimension of.
func convert(
	mod *cosmo.Model, from, to string, q units.Quantity,
	obs *measure.Redshift, u *units.Unit,
) ([]string, error) {
	in, err := parseEndpoint(from)
	if err != nil {
		return nil, err
	}
	z, err := in.redshift(mod, q)
	if err != nil {
		return nil, err
	}

	var outs []endpoint
	all := strings.EqualFold(to, "all")
	if all {
		outs = endpoints()
	} else {
		out, err := parseEndpoint(to)
		if err != nil {
			return nil, err
		}
		outs = []endpoint{out}
	}

	lines := make([]string, 0, len(outs))
	for _, out := range outs {
		v, err := out.value(mod, obs, z)
		if err != nil {
			return nil, err
		}
		if u != nil && (!all || u.Dim == v.Dim()) {
			if v, err = v.Convert(*u); err != nil {
				return nil, err
			}
		}
		if all {
			lines = append(lines, fmt.Sprintf("%s\t%s", out, v))
		} else {
			lines = append(lines, v.String())
		}
	}
	return lines, nil
}
