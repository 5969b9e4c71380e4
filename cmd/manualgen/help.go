package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: manualgen [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert manual.md into a print-ready manual.html next to the program.")
	fmt.Fprintln(w, "Open the result in a browser and print it to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory holding the manual (default: program directory)")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown source (default: manual.md)")
	fmt.Fprintln(w, "  -o, --output <path>       HTML output (default: manual.html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code Blocks:")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code blocks")
	fmt.Fprintln(w, "      --highlight-style <s> Highlight style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 general error, 2 usage or config error, 3 I/O error.")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "manualgen %s\n", Version)
}
