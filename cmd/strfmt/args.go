package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseArgs decodes each command line argument as a YAML value. An empty argument
// is the empty string. With raw set every argument is taken as a string.
func parseArgs(args []string, raw bool) ([]any, error) {
	out := make([]any, len(args))
	for i, arg := range args {
		if raw || arg == "" {
			out[i] = arg
			continue
		}
		var v any
		if err := yaml.Unmarshal([]byte(arg), &v); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		if v == nil && arg != "null" && arg != "~" {
			v = arg
		}
		out[i] = v
	}
	return out, nil
}

// parseFlowArgs decodes a comma separated argument list such as `1, two, [3]`.
func parseFlowArgs(text string) ([]any, error) {
	var out []any
	if err := yaml.Unmarshal([]byte("["+text+"]"), &out); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return out, nil
}

// readArgsFile reads a YAML list of arguments.
func readArgsFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read args file: %w", err)
	}
	var out []any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("args file must be a YAML list: %w", err)
	}
	return out, nil
}
