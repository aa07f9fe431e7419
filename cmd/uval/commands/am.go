package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/uval/am"
	"github.com/teranos/uval/display"
	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/sym"
)

func newAmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: sym.AM + " Manage uval configuration",
		Long: sym.AM + ` am — Manage uval configuration ("I am")

Display and manage uval configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (UVAL_* prefix, UVAL_TABLES for units.tables)
3. Project config (./am.toml, searched up directories)
4. User config (~/.uval/am.toml)
5. System config (/etc/uval/config.toml)
6. Default values

Examples:
  uval am show                        # Show current configuration
  uval am show --format json          # Show configuration in JSON format
  uval am show --sources              # Show where each value comes from
  uval am get display.precision       # Get specific config value
  uval am set units.impedance 75      # Write a value to ~/.uval/am.toml
  uval am validate                    # Validate current configuration`,
	}

	cmd.AddCommand(
		newAmShowCmd(app),
		newAmGetCmd(),
		newAmSetCmd(),
		newAmValidateCmd(),
		newAmWhereCmd(app),
	)
	return cmd
}

func newAmShowCmd(app *App) *cobra.Command {
	var format string
	var sources bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current uval configuration from all sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if sources {
				intro, err := am.GetConfigIntrospection()
				if err != nil {
					return err
				}
				if app.JSON {
					return display.OutputJSON(out, intro)
				}
				for _, s := range intro.Settings {
					where := string(s.Source)
					if s.SourcePath != "" {
						where += " " + s.SourcePath
					}
					fmt.Fprintf(out, "%s = %v  (%s)\n", s.Key, s.Value, where)
				}
				return nil
			}

			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if app.JSON {
				format = "json"
			}
			return writeConfig(out, cfg, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show the source of every setting")
	return cmd
}

func writeConfig(w io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		_, err = fmt.Fprintf(w, "# uval configuration\n%s", string(data))
		return err

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		_, err = fmt.Fprintf(w, "# uval configuration\n%s", string(data))
		return err
	}
	return errors.WithHint(
		errors.NewInvalidRequestError("unsupported format: %s", format),
		"supported: toml, json, yaml")
}

func newAmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., display.precision, units.tables)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !am.IsKnownKey(key) {
				return errors.WithHintf(
					errors.Wrapf(errors.ErrNotFound, "configuration key %q", key),
					"known keys: %s", strings.Join(am.Keys(), ", "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
			return err
		},
	}
}

func newAmSetCmd() *cobra.Command {
	var project bool
	var file string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a configuration value",
		Long: `Write one configuration value to a config file, keeping the rest of the
file. The value is parsed by the key's type and the result must validate;
nothing is written otherwise. The previous file is kept as .back1.

Lists are comma separated: uval am set units.tables data.toml,dose.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			switch {
			case path != "":
			case project:
				path = am.ProjectConfigName
			default:
				path = am.UserConfigPath()
			}
			if path == "" {
				return errors.NewInvalidRequestError("no home directory; pass --file")
			}

			if err := am.SetValue(path, args[0], args[1]); err != nil {
				return err
			}
			abs, _ := filepath.Abs(path)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s (%s)\n", args[0], args[1], abs)
			return err
		},
	}
	cmd.Flags().BoolVar(&project, "project", false, "Write ./am.toml instead of ~/.uval/am.toml")
	cmd.Flags().StringVar(&file, "file", "", "Write this config file")
	return cmd
}

func newAmValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long:  "Validate that the current uval configuration is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := am.Load()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
			return err
		},
	}
}

func newAmWhereCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and which files were checked.

Lists all configuration sources in order of precedence, showing
which files exist and which are missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sources := am.Sources()
			if app.JSON {
				return display.OutputJSON(out, sources)
			}

			fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
			fmt.Fprintf(out, "  1. [%-11s] built-in defaults\n", strings.ToUpper(string(am.SourceDefault)))
			for i, src := range sources {
				state := "missing"
				if src.Exists {
					state = "loaded"
				}
				path := src.Path
				if src.Source == am.SourceEnvironment && path == "" {
					path = "no " + am.EnvPrefix + "_* variables set"
				}
				fmt.Fprintf(out, "  %d. [%-11s] %s (%s)\n", i+2, strings.ToUpper(string(src.Source)), path, state)
			}
			return nil
		},
	}
}
