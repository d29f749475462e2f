package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/native"
	"github.com/newthinker/tacall/internal/ta"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listGroup     string
	listSupported bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available functions",
	Long: `List the catalog functions and whether the configured backend computes
them. The pure-Go backend lacks the candlestick patterns and a few others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lib, err := ta.NewBackend(cfg.Engine.Backend, zap.NewNop())
		if err != nil {
			return err
		}

		cat := catalog.Default()
		funcs := cat.All()
		if listGroup != "" {
			funcs = cat.ByGroup(listGroup)
			if len(funcs) == 0 {
				return core.Errorf(core.ErrNotFound, "group %q; groups are: %s",
					listGroup, strings.Join(cat.Groups(), ", "))
			}
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "NAME\tGROUP\t%s\tDESCRIPTION\n", strings.ToUpper(lib.Name()))
		for _, fn := range funcs {
			supported := native.Supports(lib, fn.Name)
			if listSupported && !supported {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", fn.Name, fn.Group, yesNo(supported), fn.Hint)
		}
		return tw.Flush()
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe FUNCTION",
	Short: "Show the inputs, parameters and outputs of a function",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, err := catalog.Default().Lookup(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s - %s (%s)\n", fn.Name, fn.Hint, fn.Group)

		fmt.Fprintln(out, "\nInputs:")
		for _, in := range fn.Inputs {
			fmt.Fprintf(out, "  %s (%s)\n", in.Name, in.Kind)
		}

		if len(fn.Options) > 0 {
			fmt.Fprintln(out, "\nParameters:")
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, opt := range fn.Options {
				fmt.Fprintf(tw, "  %s\t%s\tdefault %g%s\n", opt.Name, opt.Type, opt.Default, describeRange(opt))
			}
			tw.Flush()
		}

		fmt.Fprintln(out, "\nOutputs:")
		for _, o := range fn.Outputs {
			fmt.Fprintf(out, "  %s (%s)\n", o.Name, o.Kind)
		}
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func describeRange(opt catalog.OptionSpec) string {
	switch {
	case opt.Min != nil && opt.Max != nil:
		return fmt.Sprintf(", range [%g, %g]", *opt.Min, *opt.Max)
	case opt.Min != nil:
		return fmt.Sprintf(", min %g", *opt.Min)
	case opt.Max != nil:
		return fmt.Sprintf(", max %g", *opt.Max)
	}
	return ""
}

func init() {
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "only list functions of this group")
	listCmd.Flags().BoolVarP(&listSupported, "supported", "s", false, "only list functions the backend computes")
	rootCmd.AddCommand(listCmd, describeCmd)
}
