// Command strfmt renders format templates from the command line.
//
//	strfmt render "{0:>8.2f}|{1}" 3.14159 hello
//	strfmt repl
//	strfmt check cases.yaml
//	strfmt demo
package main

import (
	"fmt"
	"os"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd().Execute()
}
