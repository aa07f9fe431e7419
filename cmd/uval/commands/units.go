package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/uval/display"
	"github.com/teranos/uval/sym"
	"github.com/teranos/uval/uv"
)

// dimensionView is the JSON shape of a dimension
type dimensionView struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Labels  []string `json:"labels"`
}

func viewOf(d *uv.Dimension) dimensionView {
	return dimensionView{Name: d.Name(), Default: d.Label(d.DefaultIndex()), Labels: d.Labels()}
}

func newUnitsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "units [dimension]",
		Short: sym.Unit + " List dimensions and their unit labels",
		Long: sym.Unit + ` units — list dimensions and their unit labels

Without an argument every dimension is listed with its default unit. With a
dimension name every label of that dimension is listed. Dimensions loaded
from units.tables are included.

Examples:
  uval units
  uval units pressure
  uval units --json volume`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := app.Units()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				dims := reg.Dimensions()
				if app.JSON {
					views := make([]dimensionView, 0, len(dims))
					for _, d := range dims {
						views = append(views, viewOf(d))
					}
					return display.OutputJSON(out, views)
				}
				table, err := display.RenderUnitsTable(dims)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, table)
				return err
			}

			d, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			if app.JSON {
				return display.OutputJSON(out, viewOf(d))
			}
			table, err := display.RenderLabelsTable(d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, table)
			return err
		},
	}
}
