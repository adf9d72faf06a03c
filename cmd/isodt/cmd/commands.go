package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/isodatetime/datetime"
	"github.com/theory/isodatetime/datetime/format"
	"github.com/theory/isodatetime/datetime/unit"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <datetime>...",
		Short: "Parse datetimes and show their UTC values and units",
		Long: `Parses each datetime and prints its UTC value, its unit, and whether it
was local time, separated by tabs. With --unit, fails for datetimes that the
casting rule does not allow to be used with the unit.

Examples:
  isodt parse 2016-01-01T00:00:00+05:30
  isodt parse --timezone America/New_York "2024-07-04 09:00"
  isodt parse --unit D --casting safe 2016-01-01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				res, err := datetime.Parse(ctx, arg, a.settings.ParseOptions()...)
				if err != nil {
					return a.fail("parse", err)
				}
				val := datetime.NewValue(res)
				a.logger.Debug("parsed", "input", arg, "unit", res.Unit, "local", res.Local)
				fmt.Fprintf(out, "%v\t%v\t%v\n", val, res.Unit, res.Local)
			}
			return nil
		},
	}
}

func (a *app) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <datetime>...",
		Short: "Reformat datetimes",
		Long: `Parses each datetime and formats it at --unit, by default the finest unit
with a nonzero field. Output is UTC unless --local or --offset is set.

Examples:
  isodt format 2016-01-01T00:00:00+05:30
  isodt format --local --timezone Asia/Kolkata 2016-01-01T00:00Z
  isodt format --offset 60 --unit ms 2016-01-01T00:00Z
  isodt format --unit m --casting safe 2016-01-01T12:30:45Z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.context(cmd)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				res, err := datetime.Parse(ctx, arg)
				if err != nil {
					return a.fail("parse", err)
				}
				str, err := datetime.Format(ctx, res.Value, a.settings.FormatOptions()...)
				if err != nil {
					return a.fail("format", err)
				}
				a.logger.Debug("formatted", "input", arg, "output", str)
				fmt.Fprintln(out, str)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&a.local, "local", "l", false, "format in local time")
	cmd.Flags().IntVarP(&a.offset, "offset", "o", 0, "format at a fixed offset of minutes east of UTC")
	return cmd
}

func (a *app) lengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "length [<unit>...]",
		Short: "Show the buffer lengths required to format units",
		Long: `Prints the buffer length, terminator included, required to format any
value with each unit, or with --unit if no units are given.

Examples:
  isodt length D s as
  isodt length --local ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			units := []unit.Unit{a.settings.Unit}
			if len(args) > 0 {
				units = units[:0]
				for _, arg := range args {
					u, err := unit.ParseUnit(arg)
					if err != nil {
						return a.fail("length", err)
					}
					units = append(units, u)
				}
			}
			for _, u := range units {
				fmt.Fprintf(out, "%v\t%d\n", u, datetime.RequiredLength(a.settings.Local, u))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&a.local, "local", "l", false, "include room for a ±hhmm offset")
	return cmd
}

func (a *app) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List datetime units and casting rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "units:\t%v\n", strings.Join(unit.Names(), " "))
			rules := make([]string, 0, int(unit.Unsafe)+1)
			for c := unit.No; c <= unit.Unsafe; c++ {
				rules = append(rules, c.String())
			}
			fmt.Fprintf(out, "casting:\t%v\n", strings.Join(rules, " "))
			fmt.Fprintf(out, "max length:\t%d\n", format.MaxLength)
			return nil
		},
	}
}
