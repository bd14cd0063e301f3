package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		argsFile string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "render TEMPLATE [ARG...]",
		Short: "Render a template with the given arguments",
		Example: `  strfmt render "'{0:^9}'" centered
  strfmt render "{0[b]} {1:,}" "{a: 1, b: 2}" 1234567
  strfmt render --args-file args.yaml "{0.name}: {1:.1%}"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.formatter(cmd)
			if err != nil {
				return err
			}

			values, err := parseArgs(args[1:], raw)
			if err != nil {
				return err
			}
			if argsFile != "" {
				fromFile, err := readArgsFile(argsFile)
				if err != nil {
					return err
				}
				values = append(values, fromFile...)
			}

			out, err := f.Format(args[0], values...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&argsFile, "args-file", "", "YAML list of additional arguments")
	cmd.Flags().BoolVar(&raw, "raw", false, "Pass arguments as strings without YAML decoding")
	return cmd
}
