package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cranberry-synth/manualgen"
	"github.com/cranberry-synth/manualgen/internal/config"
	"github.com/cranberry-synth/manualgen/internal/fileutil"
	"github.com/cranberry-synth/manualgen/internal/hints"
)

// runMain parses args, runs the build and returns the process exit code.
// Errors are printed to env.Stderr with a hint when one applies.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	if err := run(ctx, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags))
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// run loads the config, merges flags into it and builds the manual.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over config
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := buildOptions(cfg, flags.common.quiet, env)

	start := env.Now()
	result, err := manualgen.Build(ctx, opts...)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%s -> %s (%d bytes, %v)\n",
			result.InputPath, result.OutputPath, len(result.HTML), env.Now().Sub(start).Round(time.Millisecond))
	}

	return nil
}

// mergeFlags applies explicitly set flags on top of cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.set["dir"] {
		cfg.Dir = flags.dir
	}
	if flags.set["input"] {
		cfg.Input = flags.input
	}
	if flags.set["output"] {
		cfg.Output = flags.output
	}
	if flags.set["highlight"] {
		cfg.Highlight.Enabled = flags.highlight.enabled
	}
	if flags.set["highlight-style"] {
		cfg.Highlight.Style = flags.highlight.style
		cfg.Highlight.Enabled = true
	}
}

// buildOptions translates the merged config into builder options.
func buildOptions(cfg *config.Config, quiet bool, env *Environment) []manualgen.Option {
	opts := []manualgen.Option{
		manualgen.WithInput(cfg.Input),
		manualgen.WithOutput(cfg.Output),
	}

	if cfg.Dir != "" {
		opts = append(opts, manualgen.WithDir(cfg.Dir))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, manualgen.WithHighlighting(cfg.Highlight.Style))
	}
	if quiet {
		opts = append(opts, manualgen.WithStdout(nil))
	} else {
		opts = append(opts, manualgen.WithStdout(env.Stdout))
	}

	return opts
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, manualgen.ErrMissingInput):
		name := config.DefaultInput
		if flags.input != "" {
			name = filepath.Base(flags.input)
		}
		return hints.ForMissingInput(name)
	case errors.Is(err, manualgen.ErrWriteOutput):
		return hints.ForWriteOutput()
	case errors.Is(err, manualgen.ErrInvalidHighlightStyle):
		return hints.ForHighlightStyle(manualgen.HighlightStyles())
	case errors.Is(err, config.ErrConfigNotFound):
		if !fileutil.IsFilePath(flags.common.config) {
			return hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
		}
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
