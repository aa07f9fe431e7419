package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/uval/dim"
	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/uv"
)

func newForceCmd(app *App) *cobra.Command {
	var distLabel, timeLabel string
	var newtons bool

	cmd := &cobra.Command{
		Use:   "force <mass> <mass-label> <acceleration>",
		Short: "Compute mass × distance / time²",
		Long: `Multiply a mass by an acceleration given as distance per time squared.

The result keeps the composite unit, e.g. (m*kg)/s^2. With --newtons it is
expressed in the force dimension instead, after converting the mass to kg,
the distance to m and the time to s.

Examples:
  uval force 2 kg 24.5
  uval force 10 lb 32.174 --dist ft
  uval force 2 kg 9.80665 --newtons`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.Force(args[0], args[1], args[2], distLabel, timeLabel)
			if err != nil {
				return err
			}
			if newtons {
				v, err = toNewtons(v)
				if err != nil {
					return err
				}
			}
			return app.Render(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&distLabel, "dist", "m", "Distance unit of the acceleration")
	cmd.Flags().StringVar(&timeLabel, "time", "s", "Time unit of the acceleration")
	cmd.Flags().BoolVar(&newtons, "newtons", false, "Express the result in N")
	return cmd
}

// Force returns mass × (accel distance) / (1 time)²
func (a *App) Force(mass, massLabel, accel, distLabel, timeLabel string) (*uv.Value, error) {
	m, err := strconv.ParseFloat(mass, 64)
	if err != nil {
		return nil, errors.NewInvalidRequestError("mass %q is not a number", mass)
	}
	acc, err := strconv.ParseFloat(accel, 64)
	if err != nil {
		return nil, errors.NewInvalidRequestError("acceleration %q is not a number", accel)
	}

	reg, err := a.Units()
	if err != nil {
		return nil, err
	}
	mu, err := reg.Unit(dim.Mass.String(), massLabel)
	if err != nil {
		return nil, err
	}
	du, err := reg.Unit(dim.Distance.String(), distLabel)
	if err != nil {
		return nil, err
	}
	tu, err := reg.Unit(dim.Time.String(), timeLabel)
	if err != nil {
		return nil, err
	}

	massV := uv.NewValue(m, mu)
	distV := uv.NewValue(acc, du)
	timeV := uv.NewValue(1, tu)
	return massV.Mul(distV).Div(timeV.Pow(2)), nil
}

// toNewtons converts a (distance*mass)/time^2 value to N
func toNewtons(v *uv.Value) (*uv.Value, error) {
	si, ok := v.InDimension(dim.Get(dim.Mass), "kg")
	if ok {
		si, ok = si.InDimension(dim.Get(dim.Distance), "m")
	}
	if ok {
		si, ok = si.InDimension(dim.Get(dim.Time), "s")
	}
	if !ok {
		return nil, errors.Wrapf(errors.ErrConversionFailed, "%s to N", v.String())
	}
	return uv.NewValue(si.Value(), dim.New(dim.Force, "N")), nil
}
