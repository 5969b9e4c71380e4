package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid command-line arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds output verbosity and config selection.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	enabled bool
	style   string
}

// cliFlags holds every flag of the manualgen command.
type cliFlags struct {
	common    commonFlags
	dir       string
	input     string
	output    string
	highlight highlightFlags
	version   bool
	help      bool

	// set records which flags were given explicitly, so that only those
	// override values from a config file.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "highlight fenced code blocks")
	fs.StringVar(&f.style, "highlight-style", "", "highlight style (implies --highlight)")
}

// parseFlags parses args, where args[0] is the program name.
// Positional arguments are rejected: the manual is always a single file.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("manualgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{set: make(map[string]bool)}

	fs.StringVarP(&f.dir, "dir", "d", "", "directory holding the manual (default: program directory)")
	fs.StringVarP(&f.input, "input", "i", "", "markdown source (default: manual.md)")
	fs.StringVarP(&f.output, "output", "o", "", "HTML output (default: manual.html)")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	addCommonFlags(fs, &f.common)
	addHighlightFlags(fs, &f.highlight)

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})

	return f, nil
}
