package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI can surface, plus wrapped
//   forms to verify the errors.Is() chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/cranberry-synth/manualgen"
	"github.com/cranberry-synth/manualgen/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"missing input", manualgen.ErrMissingInput, ExitIO},
		{"read input", manualgen.ErrReadInput, ExitIO},
		{"invalid encoding", manualgen.ErrInvalidEncoding, ExitIO},
		{"write output", manualgen.ErrWriteOutput, ExitIO},
		{"missing input with os error", fmt.Errorf("%w: %w", manualgen.ErrMissingInput, os.ErrNotExist), ExitIO},
		{"wrapped write output", fmt.Errorf("build: %w", manualgen.ErrWriteOutput), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"invalid highlight style", manualgen.ErrInvalidHighlightStyle, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"html conversion", manualgen.ErrHTMLConversion, ExitGeneral},
		{"shell render", manualgen.ErrShellRender, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := map[string]int{
		"ExitSuccess": ExitSuccess,
		"ExitGeneral": ExitGeneral,
		"ExitUsage":   ExitUsage,
		"ExitIO":      ExitIO,
	}
	want := map[string]int{"ExitSuccess": 0, "ExitGeneral": 1, "ExitUsage": 2, "ExitIO": 3}

	for name, code := range codes {
		if code != want[name] {
			t.Errorf("%s = %d, want %d", name, code, want[name])
		}
		if code >= 126 {
			t.Errorf("%s = %d, should be < 126", name, code)
		}
	}
}
