// Package config loads the optional YAML configuration of the manual builder.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cranberry-synth/manualgen/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Default file names, resolved against the program's directory.
const (
	DefaultInput  = "manual.md"
	DefaultOutput = "manual.html"
)

// MaxConfigSize limits config input to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxStyleLength = 50   // chroma style names are short
)

// Config holds the builder configuration.
// Relative paths are resolved against Dir, or the program's directory
// when Dir is empty.
type Config struct {
	Dir       string          `yaml:"dir"`
	Input     string          `yaml:"input"`
	Output    string          `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// HighlightConfig defines syntax highlighting of fenced code blocks.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name (default: "github")
}

// DefaultConfig returns the configuration used when no file is given:
// manual.md in, manual.html out, no highlighting.
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// Validate checks field lengths and file extensions.
func (c *Config) Validate() error {
	if err := validateFieldLength("dir", c.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input", c.Input, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}

	if c.Input == "" {
		return fmt.Errorf("%w: input: required", ErrInvalidField)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output: required", ErrInvalidField)
	}

	switch strings.ToLower(filepath.Ext(c.Input)) {
	case ".md", ".markdown":
	default:
		return fmt.Errorf("%w: input: %q must have .md or .markdown extension", ErrInvalidField, c.Input)
	}
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".html", ".htm":
	default:
		return fmt.Errorf("%w: output: %q must have .html or .htm extension", ErrInvalidField, c.Output)
	}

	if filepath.Clean(c.Input) == filepath.Clean(c.Output) {
		return fmt.Errorf("%w: output must differ from input", ErrInvalidField)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unmarshalStrict parses YAML and rejects unknown fields.
func unmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errors.New("empty config file")
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("config exceeds maximum size: %d bytes (max %d)", len(data), MaxConfigSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// SearchPaths lists the locations LoadConfig tries for a config name, in order:
// name.yaml and name.yml in the current directory, then in ~/.config/manualgen/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "manualgen", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
