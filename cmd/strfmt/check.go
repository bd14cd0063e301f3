package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rickchristie/strfmt"
	"github.com/rickchristie/strfmt/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// checkCase is one entry of a check file.
type checkCase struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Args     []any  `yaml:"args"`
	Want     string `yaml:"want"`
	// Error names the expected error class: syntax, resolution or binding.
	Error  string `yaml:"error"`
	Strict *bool  `yaml:"strict"`
}

type checkFile struct {
	Cases []checkCase `yaml:"cases"`
}

var errorClasses = map[string]error{
	"syntax":     strfmt.ErrSyntax,
	"resolution": strfmt.ErrResolution,
	"binding":    strfmt.ErrBinding,
}

var checkSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"cases": schema.Array("Test cases", schema.Object(map[string]*schema.Property{
		"name":     schema.String("Case name"),
		"template": schema.String("Template to render"),
		"args":     schema.Array("Arguments", map[string]any{}),
		"want":     schema.String("Expected output"),
		"error":    schema.String("Expected error class").Enum("syntax", "resolution", "binding"),
		"strict":   schema.Boolean("Override strict unbound checking"),
	}, "template")),
}, "cases"))

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Run template cases from a YAML file",
		Long: `check renders every case in FILE and compares it with the expected output,
printing a unified diff for each mismatch:

  cases:
    - name: centered
      template: "'{0:^5}'"
      args: [1]
      want: "'  1  '"
    - name: unbound
      template: "{0} {1}"
      args: [1]
      error: binding`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read check file: %w", err)
			}
			file, err := parseCheckFile(data)
			if err != nil {
				return err
			}
			return runChecks(cmd.OutOrStdout(), file.Cases, func(c checkCase) *strfmt.Formatter {
				caseCfg := cfg
				if c.Strict != nil {
					caseCfg.StrictUnbound = *c.Strict
				}
				return flags.newFormatter(cmd, caseCfg)
			})
		},
	}
}

func parseCheckFile(data []byte) (checkFile, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return checkFile{}, fmt.Errorf("invalid check file: %w", err)
	}
	if err := checkSchema.Validate(normalize(raw)); err != nil {
		return checkFile{}, fmt.Errorf("invalid check file: %w", err)
	}
	var file checkFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return checkFile{}, fmt.Errorf("invalid check file: %w", err)
	}
	return file, nil
}

// normalize converts YAML maps with non-string keys into string keyed maps so the
// document can be validated as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}

func runChecks(w io.Writer, cases []checkCase, formatterFor func(checkCase) *strfmt.Formatter) error {
	failed := 0
	for i, c := range cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if msg := runCheck(formatterFor(c), c); msg != "" {
			failed++
			fmt.Fprintf(w, "%sFAIL%s %s\n%s", colorRed, colorReset, name, msg)
			continue
		}
		fmt.Fprintf(w, "%sPASS%s %s\n", colorGreen, colorReset, name)
	}

	fmt.Fprintf(w, "%s%d passed, %d failed%s\n", colorDim, len(cases)-failed, failed, colorReset)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

// runCheck returns an empty string when the case passes, otherwise a description
// of the mismatch.
func runCheck(f *strfmt.Formatter, c checkCase) string {
	got, err := f.Format(c.Template, c.Args...)

	if c.Error != "" {
		if err == nil {
			return fmt.Sprintf("  expected %s error, got %q\n", c.Error, got)
		}
		if !errors.Is(err, errorClasses[c.Error]) {
			return fmt.Sprintf("  expected %s error, got: %v\n", c.Error, err)
		}
		return ""
	}
	if err != nil {
		return fmt.Sprintf("  unexpected error: %s\n", describeError(err))
	}
	if got == c.Want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(c.Want + "\n"),
		B:        difflib.SplitLines(got + "\n"),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("  want %q\n  got  %q\n", c.Want, got)
	}
	return diff
}
