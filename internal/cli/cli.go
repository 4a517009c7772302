package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ProgramName is shown in usage and error messages
const ProgramName = "desktop-groups"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the parsed command line
type Options struct {
	// GroupFile is the path of the desktop group file to open
	GroupFile string
	// ThemePath is the optional theme file, empty when not given
	ThemePath string
}

// Parse processes command-line arguments. It returns the options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags may appear before or after the group file.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
Desktop Groups - Organizes your desktop.

Usage:
  %s [options] FILENAME

Arguments:
  FILENAME
    Path to a desktop group file (.json, .yaml or .yml).

Options:
`, ProgramName)
		flagSet.PrintDefaults()
	}

	themeFlag := flagSet.String("theme", "", "Path to a theme file (optional).")

	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if flagSet.NArg() == 0 {
			break
		}
		positional = append(positional, flagSet.Arg(0))
		args = flagSet.Args()[1:]
	}

	switch {
	case len(positional) == 0:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "the following argument is required: FILENAME"}
	case len(positional) > 1:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unrecognized arguments: %v", positional[1:])}
	}

	return &Options{
		GroupFile: positional[0],
		ThemePath: *themeFlag,
	}, false, nil
}
