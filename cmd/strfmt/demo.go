package main

import (
	"fmt"
	"io"

	"github.com/rickchristie/strfmt"
	"github.com/spf13/cobra"
)

type demoCase struct {
	template string
	args     []any
}

var demoMap = map[string]float64{"1": 1.5, "2": 3.0, "3": 4.5}

var demoCases = []demoCase{
	{"Hello {}", []any{"World"}},
	{"{}, {}, {}, {}, {}", []any{1, 2, 3, 4, 5}},
	{"{4}, {3}, {2}, {1}, {0}", []any{1, 2, 3, 4, 5}},
	{"{0}, {0}, {0}, {1}, {0}", []any{1, 2}},
	{"{}, {}, {}, {}, {}", []any{10, 2.5, true, "char ptr", "std::string"}},
	{"'{0:05}', '{0:5}', '{0:<5}', '{0:>5}', '{0:^5}'", []any{1}},
	{"{0:.2}, {0:.0}, {0:05.3}, {0:.5}, {0:<010.10}", []any{2.12579}},
	{"{}, {}", []any{[]int{1, 2, 3, 4, 5}, demoMap}},
	{"{0.1}, {0[2]}, {0[1]}", []any{demoMap}},
	{"{0:+,d} {0:#x} {0:#b} {1:.1%}", []any{1234567, 0.256}},
	{"{{literal}} {0!i} {0!d} {1:*^9}", []any{"42.9", "mid"}},
}

func newDemoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a set of sample templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.formatter(cmd)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), f)
		},
	}
}

func runDemo(w io.Writer, f *strfmt.Formatter) error {
	for _, c := range demoCases {
		out, err := f.Format(c.template, c.args...)
		if err != nil {
			return fmt.Errorf("demo %q: %w", c.template, err)
		}
		fmt.Fprintf(w, "%s%s%s\n%s\n\n", colorDim, c.template, colorReset, out)
	}
	return nil
}
