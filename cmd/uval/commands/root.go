package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/uval/am"
	"github.com/teranos/uval/calc"
	"github.com/teranos/uval/dim"
	"github.com/teranos/uval/display"
	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/sym"
	"github.com/teranos/uval/uv"
)

// App is the state every command shares. The root command fills it in
// before any subcommand runs.
type App struct {
	Config    *am.Config
	Precision int
	Notation  uv.Notation
	Verbosity int
	JSON      bool

	flags    globalFlags
	registry *dim.Registry
}

type globalFlags struct {
	verbose      int
	json         bool
	precision    int
	precisionSet bool
	notation     string
}

// NewRootCmd builds the uval command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:   "uval",
		Short: "uval - values with units",
		Long: `uval - arithmetic and conversion for dimensioned values.

Values carry their units through every operation: multiplying metres by
metres gives square metres, dividing by seconds gives a velocity, and
converting re-expresses each unit from its dimension's label table.

Available commands:
  convert - Convert a single value between two units
  calc    - Evaluate reverse Polish expressions over dimensioned values
  units   - List dimensions and their unit labels
  force   - Compute mass × distance / time²
  am      - Manage uval configuration ("I am")

Examples:
  uval convert 212 temperature F C
  uval calc 10@distance:km 2@time:h / =>distance:m
  uval calc --file loads.uv --watch
  uval units volume`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	root.PersistentFlags().CountVarP(&app.flags.verbose, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().BoolVar(&app.flags.json, "json", false, "Output results as JSON")
	root.PersistentFlags().IntVar(&app.flags.precision, "precision", am.DefaultPrecision, "Digits after the decimal point (-1 for shortest)")
	root.PersistentFlags().StringVar(&app.flags.notation, "notation", "", "Number notation: general, scientific, fixed")

	root.AddCommand(
		newConvertCmd(app),
		newCalcCmd(app),
		newUnitsCmd(app),
		newForceCmd(app),
		newAmCmd(app),
		newVersionCmd(app),
	)
	return root
}

// setup loads the configuration and initialises logging. Configuration
// commands only get logging so a broken config can still be inspected and
// fixed.
func (a *App) setup(cmd *cobra.Command) error {
	a.Verbosity = a.flags.verbose
	a.flags.precisionSet = cmd.Flags().Changed("precision")
	a.JSON = display.ShouldOutputJSON(cmd)

	if isConfigCommand(cmd) {
		return logger.InitializeWithVerbosity(false, a.Verbosity)
	}

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	return a.apply(cfg)
}

// apply derives the output settings from cfg and the global flags. It runs
// again on every reload in watch mode.
func (a *App) apply(cfg *am.Config) error {
	a.Config = cfg
	a.registry = nil
	a.JSON = a.JSON || cfg.Log.JSON

	logger.SetTheme(cfg.GetTheme())
	if err := logger.InitializeWithVerbosity(cfg.Log.JSON, a.Verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.Precision = cfg.Display.Precision
	if a.flags.precisionSet {
		a.Precision = a.flags.precision
	}

	notation := cfg.Display.Notation
	if a.flags.notation != "" {
		notation = a.flags.notation
	}
	n, err := uv.ParseNotation(notation)
	if err != nil {
		return err
	}
	a.Notation = n

	if logger.ShouldOutput(a.Verbosity, logger.OutputConfig) {
		logger.AMInfow("Configuration applied",
			"precision", a.Precision,
			"notation", a.Notation.String(),
			"impedance", cfg.GetImpedance(),
			"tables", len(cfg.Units.Tables))
	}
	return nil
}

// Units returns the builtin dimensions plus the configured unit tables,
// loading them on first use
func (a *App) Units() (*dim.Registry, error) {
	if a.registry != nil {
		return a.registry, nil
	}
	reg, err := dim.LoadTables(a.Config.Units.Tables...)
	if err != nil {
		return nil, err
	}
	if a.Config.Units.CaseInsensitive {
		reg = reg.WithCaseFold()
	}
	a.registry = reg
	return reg, nil
}

// unitOptions attaches the reference impedance to amplitude units
func (a *App) unitOptions(impedance float64) func(d *uv.Dimension) []uv.AtomicOption {
	return func(d *uv.Dimension) []uv.AtomicOption {
		if d.Same(dim.Get(dim.Amplitude)) {
			return []uv.AtomicOption{uv.WithParams(impedance)}
		}
		return nil
	}
}

// Machine returns a calc machine over the current units. At -vv every step
// is printed to w.
func (a *App) Machine(w io.Writer) (*calc.Machine, error) {
	reg, err := a.Units()
	if err != nil {
		return nil, err
	}
	opts := []calc.Option{calc.WithUnitOptions(a.unitOptions(a.Config.GetImpedance()))}
	if logger.ShouldOutput(a.Verbosity, logger.OutputSteps) {
		opts = append(opts, calc.WithTrace(func(s calc.Step) {
			top := ""
			if v := s.Top(); v != nil {
				top = v.Print(a.Precision, a.Notation)
			}
			fmt.Fprintln(w, display.FormatStep(s.Token, top))
			if logger.ShouldOutput(a.Verbosity, logger.OutputStack) {
				for i := len(s.Stack) - 1; i >= 0; i-- {
					fmt.Fprintf(w, "    %d: %s\n", i, s.Stack[i].Print(a.Precision, a.Notation))
				}
			}
		}))
	}
	return calc.New(reg, opts...), nil
}

// Render writes v as text or JSON, rounded to display.round_digits when set
func (a *App) Render(w io.Writer, v *uv.Value) error {
	v = a.rounded(v)
	if a.JSON {
		return display.OutputJSON(w, display.NewValueView(v, a.Precision, a.Notation))
	}
	_, err := fmt.Fprintln(w, v.Print(a.Precision, a.Notation))
	return err
}

func (a *App) rounded(v *uv.Value) *uv.Value {
	if a.Config != nil && a.Config.Display.RoundDigits > 0 {
		return v.RoundTo(a.Config.Display.RoundDigits)
	}
	return v
}

// PrintError writes err and any hints attached to it
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, display.ErrorLine(err.Error()))
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, display.HintLine(hint))
	}
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "am" || c.Name() == "version" {
			return true
		}
	}
	return false
}

// operatorHelp lists the calc operators for help text
func operatorHelp() string {
	var s string
	for _, c := range sym.Commands {
		s += fmt.Sprintf("  %-7s %-2s %s\n", c, sym.CommandToSymbol[c], sym.CommandDescriptions[c])
	}
	return s
}
