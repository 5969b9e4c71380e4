package manualgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/cranberry-synth/manualgen/internal/assets"
	"github.com/cranberry-synth/manualgen/internal/fileutil"
	"github.com/cranberry-synth/manualgen/internal/pipeline"
)

// Fixed document properties.
const (
	DefaultInputName  = "manual.md"
	DefaultOutputName = "manual.html"
	DocumentTitle     = "Cranberry Synth 操作マニュアル"
	DocumentLang      = "ja"

	filePermissions = 0o644 // rw-r--r--
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.ShellRenderer        = (*pipeline.DocumentShell)(nil)
)

// executablePath is os.Executable, replaceable in tests.
var executablePath = os.Executable

// Result describes a completed build.
type Result struct {
	InputPath  string
	OutputPath string
	HTML       []byte
}

// Builder reads the Markdown manual, renders it and writes the HTML document.
// Create with NewBuilder and call Build; a Builder may be reused.
type Builder struct {
	cfg           builderConfig
	inputPath     string
	outputPath    string
	css           string
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	shell         pipeline.ShellRenderer
}

type builderConfig struct {
	dir            string
	input          string
	output         string
	stdout         io.Writer
	highlight      bool
	highlightStyle string
}

// Option configures a Builder.
type Option func(*Builder)

// WithDir sets the directory relative input and output paths resolve
// against. Defaults to the directory of the running executable.
func WithDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.dir = dir
	}
}

// WithInput sets the Markdown source path (default: manual.md).
func WithInput(path string) Option {
	return func(b *Builder) {
		b.cfg.input = path
	}
}

// WithOutput sets the HTML document path (default: manual.html).
func WithOutput(path string) Option {
	return func(b *Builder) {
		b.cfg.output = path
	}
}

// WithStdout sets where the completion message is printed (default: os.Stdout).
// A nil writer discards the message.
func WithStdout(w io.Writer) Option {
	return func(b *Builder) {
		if w == nil {
			w = io.Discard
		}
		b.cfg.stdout = w
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks with
// the named chroma style. An empty name selects the default style.
func WithHighlighting(style string) Option {
	return func(b *Builder) {
		b.cfg.highlight = true
		b.cfg.highlightStyle = style
	}
}

// withAssetLoader replaces the embedded assets (tests only).
func withAssetLoader(l assets.AssetLoader) Option {
	return func(b *Builder) {
		b.assetLoader = l
	}
}

// NewBuilder resolves paths and prepares the conversion pipeline.
// Returns ErrResolveDir if no directory was given and the executable's
// directory cannot be determined, or ErrInvalidHighlightStyle for an
// unknown highlight style.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			input:  DefaultInputName,
			output: DefaultOutputName,
			stdout: os.Stdout,
		},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.resolvePaths(); err != nil {
		return nil, err
	}

	css, err := b.assetLoader.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading style sheet: %w", err)
	}
	b.css = css

	tmpl, err := b.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading document shell: %w", err)
	}
	if b.shell, err = pipeline.NewDocumentShell(tmpl); err != nil {
		return nil, err
	}

	var convOpts []pipeline.ConverterOption
	if b.cfg.highlight {
		style := b.cfg.highlightStyle
		if style == "" {
			style = pipeline.DefaultHighlightStyle
		}
		convOpts = append(convOpts, pipeline.WithHighlightStyle(style))
	}
	if b.htmlConverter, err = pipeline.NewGoldmarkConverter(convOpts...); err != nil {
		return nil, err
	}

	return b, nil
}

// resolvePaths makes input and output absolute, relative to the
// configured directory or the executable's directory.
func (b *Builder) resolvePaths() error {
	dir := b.cfg.dir
	if dir == "" {
		var err error
		if dir, err = ExecutableDir(); err != nil {
			return err
		}
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolveDir, err)
	}

	b.inputPath = resolveAgainst(absDir, b.cfg.input)
	b.outputPath = resolveAgainst(absDir, b.cfg.output)
	return nil
}

func resolveAgainst(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

// HighlightStyles lists the style names accepted by WithHighlighting.
func HighlightStyles() []string {
	return pipeline.HighlightStyleNames()
}

// ExecutableDir returns the directory of the running executable with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolveDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// InputPath returns the resolved Markdown source path.
func (b *Builder) InputPath() string { return b.inputPath }

// OutputPath returns the resolved HTML document path.
func (b *Builder) OutputPath() string { return b.outputPath }

// Build runs read, render, embed and write in order, then prints the
// completion message. Nothing is written unless every earlier stage
// succeeded, and a failed write leaves any previous output untouched.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	source, err := b.readSource()
	if err != nil {
		return nil, err
	}

	mdContent := b.preprocessor.PreprocessMarkdown(ctx, source)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := b.htmlConverter.ToFragment(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	document, err := b.shell.Render(ctx, pipeline.Document{
		Lang:  DocumentLang,
		Title: DocumentTitle,
		CSS:   b.css,
		Body:  fragment,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlBytes := []byte(document)
	if err := fileutil.WriteFileAtomic(b.outputPath, htmlBytes, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	fmt.Fprintf(b.cfg.stdout, "Generated: %s\n", b.outputPath)
	fmt.Fprintln(b.cfg.stdout, "Open it in a browser and press Ctrl+P, then choose \"Save as PDF\" to export it.")

	return &Result{
		InputPath:  b.inputPath,
		OutputPath: b.outputPath,
		HTML:       htmlBytes,
	}, nil
}

// readSource loads the Markdown source as UTF-8 text.
func (b *Builder) readSource() (string, error) {
	data, err := os.ReadFile(b.inputPath) // #nosec G304 -- path chosen by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrMissingInput, err)
		}
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, b.inputPath)
	}
	return string(data), nil
}

// Build creates a Builder with opts and runs it once.
func Build(ctx context.Context, opts ...Option) (*Result, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx)
}
