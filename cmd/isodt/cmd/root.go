// Package cmd implements the isodt subcommands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/theory/isodatetime/internal/config"
)

// app carries the state shared by the subcommands.
type app struct {
	cfgFile string
	verbose bool

	// Overrides for the configuration file.
	unit     string
	casting  string
	timezone string
	offset   int
	local    bool

	logger   *slog.Logger
	settings *config.Settings
}

// Execute runs the isodt command with the process arguments.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}

// NewRootCmd returns the isodt root command, writing results to out and
// logs and errors to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "isodt",
		Short: "Parse and format ISO 8601 datetimes",
		Long: `isodt parses and formats ISO 8601-style datetime strings with up to
attosecond precision.

Examples:
  isodt parse 2016-01-01T12:30:45.123456789012Z
  isodt format --local --timezone Asia/Tokyo 2016-01-01T00:00Z
  isodt format --offset -480 --unit s 2016-01-01T00:00Z
  isodt length --local ms
  isodt units`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&a.unit, "unit", "u", "", "datetime unit, or auto")
	flags.StringVarP(&a.casting, "casting", "c", "", "casting rule: no, equiv, safe, same_kind, or unsafe")
	flags.StringVar(&a.timezone, "timezone", "", "local time zone name")

	root.AddCommand(
		a.parseCmd(),
		a.formatCmd(),
		a.lengthCmd(),
		a.unitsCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides, and creates the
// logger.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadFromEnv(a.cfgFile)
	if err != nil {
		return a.fail("load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("unit") {
		cfg.Unit = a.unit
	}
	if flags.Changed("casting") {
		cfg.Casting = a.casting
	}
	if flags.Changed("timezone") {
		cfg.TimeZone = a.timezone
	}
	if flags.Changed("offset") {
		cfg.OffsetMinutes = &a.offset
	}
	if flags.Changed("local") {
		cfg.Local = a.local
	}

	if a.settings, err = cfg.Settings(); err != nil {
		return a.fail("configure", err)
	}

	a.logger.Debug(
		"configured",
		"unit", a.settings.Unit,
		"casting", a.settings.Casting,
		"timezone", a.settings.Location,
		"local", a.settings.Local,
	)
	return nil
}

// context returns a context carrying the configured time zone.
func (a *app) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return a.settings.Context(ctx)
}

// fail logs err and returns it wrapped with msg.
func (a *app) fail(msg string, err error) error {
	a.logger.Error(msg, "error", err)
	return fmt.Errorf("%v: %w", msg, err)
}
