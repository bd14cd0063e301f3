package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rickchristie/strfmt"
	"github.com/spf13/cobra"
)

// lineReader is the part of *readline.Instance the REPL uses.
type lineReader interface {
	Readline() (string, error)
}

func newReplCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Render templates interactively",
		Long: `Each line is a template, optionally followed by " | " and a comma
separated list of YAML arguments:

  {0:>6.2f} | 3.14159
  {0.name} is {0.age!s:^5} | {name: ada, age: 36}

Enter "exit" or press Ctrl-D to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.formatter(cmd)
			if err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt: colorCyan + "strfmt> " + colorReset,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			return runREPL(rl, f, cmd.OutOrStdout())
		},
	}
}

func runREPL(rl lineReader, f *strfmt.Formatter, w io.Writer) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		out, err := evalLine(f, line)
		if err != nil {
			fmt.Fprintf(w, "%s%s%s\n", colorRed, describeError(err), colorReset)
			continue
		}
		fmt.Fprintln(w, out)
	}
}

// evalLine renders "TEMPLATE" or "TEMPLATE | ARGS".
func evalLine(f *strfmt.Formatter, line string) (string, error) {
	template, argText, found := strings.Cut(line, " | ")
	var args []any
	if found {
		var err error
		args, err = parseFlowArgs(argText)
		if err != nil {
			return "", err
		}
	}
	return f.Format(template, args...)
}

// describeError prefers the caret diagnostic of strfmt errors.
func describeError(err error) string {
	if d, ok := err.(interface{ Detail() string }); ok {
		return d.Detail()
	}
	return err.Error()
}
