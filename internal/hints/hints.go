// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// IsGoRun detects a binary built into a temporary directory by `go run`,
// where the program's own directory is not the docs directory.
var IsGoRun = func() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	return strings.Contains(filepath.ToSlash(exe), "/go-build")
}

// ForMissingInput returns hints for a missing Markdown source.
func ForMissingInput(inputName string) string {
	var hints []string

	if IsGoRun() {
		hints = append(hints, "binaries started with `go run` live in a temp directory; pass --dir")
	}
	hints = append(hints, "place "+inputName+" next to the executable or use --dir/--input")

	return formatHints(hints)
}

// ForWriteOutput returns hints for output write failures.
func ForWriteOutput() string {
	return format("check the output directory exists and is writable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/manualgen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/manualgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForHighlightStyle returns hints for unknown highlight styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
