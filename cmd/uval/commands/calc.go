package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/uval/am"
	"github.com/teranos/uval/calc"
	"github.com/teranos/uval/display"
	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/sym"
)

func newCalcCmd(app *App) *cobra.Command {
	var (
		file     string
		watch    bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "calc [tokens...]",
		Short: sym.Calc + " Evaluate reverse Polish expressions",
		Long: sym.Calc + ` calc — evaluate reverse Polish expressions over dimensioned values

Operands are plain numbers (2.5) or numbers bound to a unit as
<number>@<dimension>:<label> (3@distance:km). Operators:

` + operatorHelp() + `
=> also takes <dimension>:<label> to convert only one dimension.

With --file every non-blank line of the script is one expression; lines
starting with # are comments. Quote labels with spaces: '4@area:sq m'.
--watch re-runs the script whenever it, a unit table, or a config file
changes.

Examples:
  uval calc 2@mass:kg 9.80665@distance:m '*' 1@time:s ^2 /
  uval calc 10@distance:km 2@time:h / =>distance:m
  uval calc 1234.5 round:2
  uval calc --file loads.uv --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case file == "" && watch:
				return errors.NewInvalidRequestError("--watch needs --file")
			case file == "" && len(args) == 0:
				return errors.WithHint(errors.NewInvalidRequestError("nothing to evaluate"), "pass tokens or --file script.uv")
			case file != "" && len(args) > 0:
				return errors.NewInvalidRequestError("pass tokens or --file, not both")
			case file == "":
				m, err := app.Machine(cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				v, err := m.Eval(args)
				if err != nil {
					return err
				}
				return app.Render(out, v)
			case watch:
				return app.WatchScript(cmd.Context(), out, cmd.ErrOrStderr(), file, debounce)
			default:
				return app.RunScript(cmd.Context(), out, cmd.ErrOrStderr(), file)
			}
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Script with one expression per line")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the script when it or the configuration changes")
	cmd.Flags().DurationVar(&debounce, "debounce", am.DefaultDebounce, "Quiet period before a re-run in watch mode")
	return cmd
}

// scriptLine is the JSON shape of one evaluated script line
type scriptLine struct {
	calc.Result
	display.ValueView
}

// RunScript evaluates the script at path and renders one result per line
func (a *App) RunScript(ctx context.Context, out, diag io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open script %s", path)
	}
	defer f.Close()

	m, err := a.Machine(diag)
	if err != nil {
		return err
	}
	results, err := m.EvalScript(ctx, f)

	if a.JSON {
		lines := make([]scriptLine, 0, len(results))
		for _, r := range results {
			lines = append(lines, scriptLine{Result: r, ValueView: display.NewValueView(a.rounded(r.Value), a.Precision, a.Notation)})
		}
		if jerr := display.OutputJSON(out, lines); jerr != nil {
			return jerr
		}
		return err
	}

	for _, r := range results {
		if rerr := a.Render(out, r.Value); rerr != nil {
			return rerr
		}
	}
	return errors.Wrapf(err, "in %s", path)
}

// WatchScript runs the script, then again on every change to it, to a unit
// table or to a config file, until ctx is cancelled. A failing run is
// reported and watching continues.
func (a *App) WatchScript(ctx context.Context, out, diag io.Writer, path string, debounce time.Duration) error {
	runOnce := func() {
		if err := a.RunScript(ctx, out, diag, path); err != nil {
			PrintError(diag, err)
		}
	}
	runOnce()

	w, err := am.NewWatcher(append([]string{path}, a.Config.Units.Tables...)...)
	if err != nil {
		return err
	}
	w.SetDebounce(debounce)
	w.OnReload(func(cfg *am.Config) error {
		if err := a.apply(cfg); err != nil {
			return err
		}
		fmt.Fprintln(diag, display.RerunBanner(path))
		runOnce()
		return nil
	})
	am.SetGlobalWatcher(w)
	defer am.SetGlobalWatcher(nil)

	logger.CalcInfow("Watching script",
		logger.FieldFile, path)
	w.Start()
	<-ctx.Done()
	return w.Stop()
}
