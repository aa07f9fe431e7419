package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/uv"
)

func newConvertCmd(app *App) *cobra.Command {
	var impedance float64

	cmd := &cobra.Command{
		Use:   "convert <value> <dimension> <from> <to>",
		Short: "Convert a single value between two units",
		Long: `Convert a value of one dimension from one unit label to another.

Labels are matched exactly unless units.case_insensitive is set. Amplitude
conversions between power, voltage and current use the reference impedance
from units.impedance, or --impedance.

Examples:
  uval convert 212 temperature F C
  uval convert 1 pressure atm "mm Hg"
  uval convert 0 amplitude dBm dBmV --impedance 75`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			z := app.Config.GetImpedance()
			if cmd.Flags().Changed("impedance") {
				z = impedance
			}
			v, err := app.Convert(args[0], args[1], args[2], args[3], z)
			if err != nil {
				return err
			}
			return app.Render(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().Float64Var(&impedance, "impedance", 0, "Reference impedance in ohms for amplitude units")
	return cmd
}

// Convert parses raw as a value in dimension/from and re-expresses it in to
func (a *App) Convert(raw, dimension, from, to string, impedance float64) (*uv.Value, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("%q is not a number", raw),
			"write the value first: uval convert 2.5 distance km mi")
	}
	if impedance < 0 {
		return nil, errors.NewInvalidRequestError("impedance must be positive, got %g", impedance)
	}

	reg, err := a.Units()
	if err != nil {
		return nil, err
	}
	d, err := reg.Lookup(dimension)
	if err != nil {
		return nil, err
	}
	src, err := reg.Unit(dimension, from, a.unitOptions(impedance)(d)...)
	if err != nil {
		return nil, err
	}
	dst, err := reg.Unit(dimension, to)
	if err != nil {
		return nil, err
	}

	out, ok := uv.NewValue(f, src).InDimension(d, dst.Label())
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrConversionFailed, "%s %s to %s", raw, src.Label(), dst.Label()),
			"%s is outside the range %s can express", raw+" "+src.Label(), dst.Label())
	}

	logger.ConvertDebugw("Converted",
		logger.FieldDimension, d.Name(),
		logger.FieldFrom, src.Label(),
		logger.FieldTo, dst.Label(),
		logger.FieldValue, out.Value())
	return out, nil
}
